package molecule

import (
	"testing"

	"github.com/kevinconaway/molecule/src/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEachScalarFields(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Uint32(1, 150))
	require.NoError(t, w.String(2, "testing"))
	require.NoError(t, w.Sint32(3, -1))
	require.NoError(t, w.Fixed32(4, 0xDEADBEEF))

	got := map[int32]Value{}
	buffer := codec.NewBuffer(w.Bytes())
	err := MessageEach(buffer, func(fieldNum int32, value Value) (bool, error) {
		got[fieldNum] = value
		return true, nil
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(150), got[1].AsUint32())
	assert.Equal(t, "testing", got[2].AsString())
	assert.Equal(t, int32(-1), got[3].AsSint32())
	assert.Equal(t, uint32(0xDEADBEEF), got[4].AsFixed32())
}

func TestMessageEachStopsEarly(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Int32(1, 1))
	require.NoError(t, w.Int32(2, 2))
	require.NoError(t, w.Int32(3, 3))

	var seen []int32
	buffer := codec.NewBuffer(w.Bytes())
	err := MessageEach(buffer, func(fieldNum int32, value Value) (bool, error) {
		seen = append(seen, fieldNum)
		return fieldNum != 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, seen)
}

func TestMessageEachRejectsGroupWireType(t *testing.T) {
	// Hand-craft a tag that an upstream writer could never legally
	// produce: field 1 with the deprecated START_GROUP wire type.
	buf := codec.AppendUvarint(nil, uint64(1)<<3|uint64(codec.WireStartGroup))
	buffer := codec.NewBuffer(buf)
	err := MessageEach(buffer, func(int32, Value) (bool, error) {
		return true, nil
	})
	assert.ErrorIs(t, err, codec.ErrGroupUnsupported)
}

func TestPackedRepeatedEachInt32Example(t *testing.T) {
	// From the wire-format spec: packed repeated [3, 270, 86942].
	w := NewWriter()
	require.NoError(t, w.PackedInt32(5, []int32{3, 270, 86942}))

	var field int32
	var payload []byte
	buffer := codec.NewBuffer(w.Bytes())
	require.NoError(t, MessageEach(buffer, func(fieldNum int32, value Value) (bool, error) {
		field = fieldNum
		payload = value.Bytes
		return true, nil
	}))
	assert.Equal(t, int32(5), field)

	var got []int32
	nested := codec.NewBuffer(payload)
	err := PackedRepeatedEach(nested, codec.FieldType_INT32, func(value Value) (bool, error) {
		got = append(got, value.AsInt32())
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 270, 86942}, got)
}

func TestPackedRepeatedEachFixed64(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.PackedFixed64(1, []uint64{1, 2, 3}))

	var payload []byte
	buffer := codec.NewBuffer(w.Bytes())
	require.NoError(t, MessageEach(buffer, func(fieldNum int32, value Value) (bool, error) {
		payload = value.Bytes
		return true, nil
	}))

	var got []uint64
	nested := codec.NewBuffer(payload)
	err := PackedRepeatedEach(nested, codec.FieldType_FIXED64, func(value Value) (bool, error) {
		got = append(got, value.AsFixed64())
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)
}

func TestMessageEachNestedMessage(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Message(1, func(inner *Writer) error {
		return inner.String(1, "nested")
	}))

	buffer := codec.NewBuffer(w.Bytes())
	err := MessageEach(buffer, func(fieldNum int32, value Value) (bool, error) {
		assert.Equal(t, int32(1), fieldNum)
		nested := codec.NewBuffer(value.Bytes)
		return true, MessageEach(nested, func(innerField int32, innerValue Value) (bool, error) {
			assert.Equal(t, int32(1), innerField)
			assert.Equal(t, "nested", innerValue.AsString())
			return true, nil
		})
	})
	require.NoError(t, err)
}
