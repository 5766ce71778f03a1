package molecule

import (
	"fmt"

	"github.com/kevinconaway/molecule/src/codec"
)

// SkipField advances buffer past the payload of a field whose wire type
// has already been read (typically via DecodeTagAndWireType), without
// interpreting it. This generalizes the per-wire-type skip dispatch the
// teacher's Buffer.findGroupEnd used internally to walk past unrelated
// fields while hunting for a group's end tag -- but without any GROUP
// case, since groups are never produced by DecodeTagAndWireType in this
// library.
func SkipField(buffer *codec.Buffer, wireType codec.WireType) error {
	switch wireType {
	case codec.WireVarint:
		if _, err := buffer.DecodeVarint(); err != nil {
			return fmt.Errorf("SkipField: error skipping varint: %w", err)
		}
	case codec.WireFixed32:
		if err := buffer.Skip(4); err != nil {
			return fmt.Errorf("SkipField: error skipping fixed32: %w", err)
		}
	case codec.WireFixed64:
		if err := buffer.Skip(8); err != nil {
			return fmt.Errorf("SkipField: error skipping fixed64: %w", err)
		}
	case codec.WireBytes:
		if _, err := buffer.DecodeRawBytes(false); err != nil {
			return fmt.Errorf("SkipField: error skipping bytes: %w", err)
		}
	case codec.WireStartGroup, codec.WireEndGroup:
		return fmt.Errorf("SkipField: %w", codec.ErrGroupUnsupported)
	default:
		return fmt.Errorf("SkipField: %w", codec.ErrBadWireType)
	}
	return nil
}
