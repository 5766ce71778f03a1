package molecule

import (
	"fmt"

	"github.com/kevinconaway/molecule/src/codec"
)

// MapEntryEachFn is called once per decoded map entry with the raw key
// and value Values. The caller is expected to reinterpret each via the
// As* accessors on Value matching the key/value FieldTypes it passed to
// MapEntryEach.
type MapEntryEachFn func(key Value, val Value) (bool, error)

// MapEntryEach decodes a length-delimited map-entry sub-message (tag 1 =
// key, tag 2 = value) and invokes fn once with the decoded pair.
//
// Each field of the entry is preceded by its tag, which is read only to
// tell the key (1) from the value (2); the wire type carried in that tag
// is not used. The entry's shape is fixed by the map's declared
// key/value FieldTypes, so the wire type for each position is taken from
// them instead, the same way PackedRepeatedEach derives the wire type
// for every packed element from its declared FieldType.
func MapEntryEach(buffer *codec.Buffer, keyType, valType codec.FieldType, fn MapEntryEachFn) error {
	if !keyType.ValidMapKey() {
		return fmt.Errorf("MapEntryEach: %w: key type %v", ErrInvalidMapFieldType, keyType)
	}
	if !valType.ValidMapValue() {
		return fmt.Errorf("MapEntryEach: %w: value type %v", ErrInvalidMapFieldType, valType)
	}

	keyWire, ok := keyType.WireType()
	if !ok {
		return fmt.Errorf("MapEntryEach: %w: key type %v", ErrInvalidMapFieldType, keyType)
	}
	valWire, ok := valType.WireType()
	if !ok {
		return fmt.Errorf("MapEntryEach: %w: value type %v", ErrInvalidMapFieldType, valType)
	}

	return Message(buffer, func(nested *codec.Buffer) error {
		var key, val Value
		haveKey, haveVal := false, false

		for !nested.EOF() {
			fieldNum, _, err := nested.DecodeTagAndWireType()
			if err != nil {
				return fmt.Errorf("MapEntryEach: error decoding entry tag: %w", err)
			}

			switch fieldNum {
			case 1:
				if err := readValueFromBuffer(keyWire, nested, &key); err != nil {
					return fmt.Errorf("MapEntryEach: error decoding key: %w", err)
				}
				haveKey = true
			case 2:
				if err := readValueFromBuffer(valWire, nested, &val); err != nil {
					return fmt.Errorf("MapEntryEach: error decoding value: %w", err)
				}
				haveVal = true
			default:
				return fmt.Errorf("MapEntryEach: unexpected field number %d in map entry", fieldNum)
			}
		}

		if !haveKey || !haveVal {
			return fmt.Errorf("MapEntryEach: map entry missing key or value")
		}

		_, err := fn(key, val)
		return err
	})
}
