package codec

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVarintRoundTrip(t *testing.T) {
	for _, u := range []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64} {
		buf := AppendUvarint(nil, u)
		cb := NewBuffer(buf)
		got, err := cb.DecodeVarint()
		require.NoError(t, err)
		assert.Equal(t, u, got)
		assert.True(t, cb.EOF())
	}
}

func TestDecodeVarintTruncated(t *testing.T) {
	cb := NewBuffer([]byte{0x80, 0x80})
	_, err := cb.DecodeVarint()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeVarintOverflow(t *testing.T) {
	// 9 continuation bytes followed by a 10th byte with value >= 2: overflows uint64.
	cb := NewBuffer([]byte{
		0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02,
	})
	_, err := cb.DecodeVarint()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeVarint32TruncatedFrom64Bit(t *testing.T) {
	// The canonical 10-byte encoding of -1 as a 64-bit varint, decoded
	// with 32-bit masking reinterpretation, must yield -1.
	cb := NewBuffer([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01})
	got, err := cb.DecodeVarint32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), int32(got))
	assert.True(t, cb.EOF())
}

func TestDecodeVarint32OverflowOnExtraContinuation(t *testing.T) {
	// 5 payload bytes, then 5 tolerated continuation bytes the last of
	// which still has its high bit set (an 11th byte would follow): this
	// must fail with overflow.
	cb := NewBuffer([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // bits 0..34
		0x80, 0x80, 0x80, 0x80, 0x80, // 5 tolerated continuation bytes, all still continuing
	})
	_, err := cb.DecodeVarint32()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeTagAndWireTypeExample(t *testing.T) {
	// field=1, wireType=VARINT -> tag byte 0x08
	cb := NewBuffer([]byte{0x08, 0x96, 0x01})
	field, wireType, err := cb.DecodeTagAndWireType()
	require.NoError(t, err)
	assert.Equal(t, int32(1), field)
	assert.Equal(t, WireVarint, wireType)

	v, err := cb.DecodeVarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(150), v)
}

func TestDecodeTagAndWireTypeRejectsGroups(t *testing.T) {
	for _, wt := range []WireType{WireStartGroup, WireEndGroup} {
		tag := uint64(1)<<3 | uint64(wt)
		cb := NewBuffer(AppendUvarint(nil, tag))
		_, _, err := cb.DecodeTagAndWireType()
		assert.ErrorIs(t, err, ErrGroupUnsupported)
	}
}

func TestDecodeTagAndWireTypeRejectsUnknownWireType(t *testing.T) {
	tag := uint64(1)<<3 | 6 // wire type 6 is not assigned
	cb := NewBuffer(AppendUvarint(nil, tag))
	_, _, err := cb.DecodeTagAndWireType()
	assert.ErrorIs(t, err, ErrBadWireType)
}

func TestDecodeFixed32Example(t *testing.T) {
	cb := NewBuffer([]byte{0xEF, 0xBE, 0xAD, 0xDE})
	got, err := cb.DecodeFixed32()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), got)
}

func TestDecodeFixed64TooShort(t *testing.T) {
	cb := NewBuffer([]byte{1, 2, 3})
	_, err := cb.DecodeFixed64()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeRawBytesExample(t *testing.T) {
	cb := NewBuffer([]byte{0x07, 't', 'e', 's', 't', 'i', 'n', 'g'})
	got, err := cb.DecodeRawBytes(false)
	require.NoError(t, err)
	assert.Equal(t, "testing", string(got))
	assert.True(t, cb.EOF())
}

func TestDecodeRawBytesLengthLimit(t *testing.T) {
	buf := AppendUvarint(nil, maxLength+1)
	cb := NewBuffer(buf)
	_, err := cb.DecodeRawBytes(false)
	assert.ErrorIs(t, err, ErrLengthLimit)
}

func TestDecodeStringResyncsMalformedUTF8(t *testing.T) {
	// A lone continuation byte (0x80) in the middle of otherwise valid
	// ASCII text should not abort the decode.
	raw := []byte{'a', 0x80, 'b'}
	buf := AppendUvarint(nil, uint64(len(raw)))
	buf = append(buf, raw...)
	cb := NewBuffer(buf)
	got, err := cb.DecodeString()
	require.NoError(t, err)
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
}

func TestDecodeSfixed(t *testing.T) {
	buf := AppendFixed32(nil, uint32(int32(-42)))
	cb := NewBuffer(buf)
	got, err := cb.DecodeSfixed32()
	require.NoError(t, err)
	assert.Equal(t, int32(-42), got)

	buf64 := AppendFixed64(nil, uint64(int64(-42)))
	cb64 := NewBuffer(buf64)
	got64, err := cb64.DecodeSfixed64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), got64)
}

func TestFieldTypeWireType(t *testing.T) {
	wt, ok := FieldType_SINT32.WireType()
	assert.True(t, ok)
	assert.Equal(t, WireVarint, wt)

	_, ok = FieldType_GROUP.WireType()
	assert.False(t, ok)
}

func TestFieldTypeValidMapKey(t *testing.T) {
	assert.True(t, FieldType_STRING.ValidMapKey())
	assert.False(t, FieldType_DOUBLE.ValidMapKey())
	assert.False(t, FieldType_BYTES.ValidMapKey())
}
