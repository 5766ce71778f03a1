package molecule

import (
	"fmt"

	"github.com/kevinconaway/molecule/src/codec"
)

// RepeatedScalar writes field once per element of values using write,
// the ordinary (non-packed) repeated field encoding: a full tag +
// payload per element rather than one tag and a concatenated blob.
// write is typically a Writer method reference, e.g.
// molecule.RepeatedScalar(w, 4, ids, (*Writer).Int32).
func RepeatedScalar[T any](w *Writer, field int32, values []T, write func(*Writer, int32, T) error) error {
	for i, v := range values {
		if err := write(w, field, v); err != nil {
			return fmt.Errorf("RepeatedScalar: error writing element %d: %w", i, err)
		}
	}
	return nil
}

// packedVarint writes field as a single DELIMITED blob containing the
// concatenated varint encoding of each element in values. The total
// length isn't known until every element is encoded, so this goes
// through the bookmark/backfill delimited scope like String and Bytes.
func packedVarint[T any](w *Writer, field int32, values []T, encode func([]byte, T) []byte) error {
	checkpoint, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.buf = encode(w.buf, v)
	}
	w.endDelimited(checkpoint)
	return nil
}

// packedFixedWidth writes field as a single DELIMITED blob of
// fixed-width elements. Unlike packedVarint, the total payload length
// (len(values) * width) is known before the first element is encoded,
// so the length is emitted directly and no bookmark is needed.
func packedFixedWidth[T any](w *Writer, field int32, values []T, width int, encode func([]byte, T) []byte) error {
	if err := w.writeTag(field, codec.WireBytes); err != nil {
		return err
	}
	w.buf = codec.AppendUvarint(w.buf, uint64(len(values)*width))
	for _, v := range values {
		w.buf = encode(w.buf, v)
	}
	return nil
}

// PackedInt32 writes values as a packed-repeated VARINT field.
func (w *Writer) PackedInt32(field int32, values []int32) error {
	return packedVarint(w, field, values, codec.AppendVarint32)
}

// PackedInt64 writes values as a packed-repeated VARINT field.
func (w *Writer) PackedInt64(field int32, values []int64) error {
	return packedVarint(w, field, values, codec.AppendVarint)
}

// PackedUint32 writes values as a packed-repeated VARINT field.
func (w *Writer) PackedUint32(field int32, values []uint32) error {
	return packedVarint(w, field, values, func(buf []byte, v uint32) []byte {
		return codec.AppendUvarint(buf, uint64(v))
	})
}

// PackedUint64 writes values as a packed-repeated VARINT field. Each
// element is subject to the same 2^63 cap as Writer.Uint64.
func (w *Writer) PackedUint64(field int32, values []uint64) error {
	for _, v := range values {
		if v >= uint64MaxForWire64 {
			return fmt.Errorf("PackedUint64: %w", ErrRangeViolation)
		}
	}
	return packedVarint(w, field, values, codec.AppendUvarint)
}

// PackedSint32 writes values as a packed-repeated zigzag VARINT field.
func (w *Writer) PackedSint32(field int32, values []int32) error {
	return packedVarint(w, field, values, codec.AppendZigzag32)
}

// PackedSint64 writes values as a packed-repeated zigzag VARINT field.
func (w *Writer) PackedSint64(field int32, values []int64) error {
	return packedVarint(w, field, values, codec.AppendZigzag64)
}

// PackedBool writes values as a packed-repeated VARINT field.
func (w *Writer) PackedBool(field int32, values []bool) error {
	return packedVarint(w, field, values, codec.AppendBool)
}

// PackedEnum writes values as a packed-repeated VARINT field.
func (w *Writer) PackedEnum(field int32, values []int32) error {
	return packedVarint(w, field, values, codec.AppendVarint32)
}

// PackedFixed32 writes values as a packed-repeated FIXED32 field.
func (w *Writer) PackedFixed32(field int32, values []uint32) error {
	return packedFixedWidth(w, field, values, 4, codec.AppendFixed32)
}

// PackedSfixed32 writes values as a packed-repeated FIXED32 field.
func (w *Writer) PackedSfixed32(field int32, values []int32) error {
	return packedFixedWidth(w, field, values, 4, func(buf []byte, v int32) []byte {
		return codec.AppendFixed32(buf, uint32(v))
	})
}

// PackedFloat writes values as a packed-repeated FIXED32 field.
func (w *Writer) PackedFloat(field int32, values []float32) error {
	return packedFixedWidth(w, field, values, 4, codec.AppendFloat32)
}

// PackedFixed64 writes values as a packed-repeated FIXED64 field.
func (w *Writer) PackedFixed64(field int32, values []uint64) error {
	return packedFixedWidth(w, field, values, 8, codec.AppendFixed64)
}

// PackedSfixed64 writes values as a packed-repeated FIXED64 field.
func (w *Writer) PackedSfixed64(field int32, values []int64) error {
	return packedFixedWidth(w, field, values, 8, func(buf []byte, v int64) []byte {
		return codec.AppendFixed64(buf, uint64(v))
	})
}

// PackedDouble writes values as a packed-repeated FIXED64 field.
func (w *Writer) PackedDouble(field int32, values []float64) error {
	return packedFixedWidth(w, field, values, 8, codec.AppendFloat64)
}
