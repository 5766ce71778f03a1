package molecule

import (
	"math"

	"github.com/kevinconaway/molecule/src/codec"
)

// Value is a decoded wire-format value together with the wire type it
// was decoded as. Exactly one of Number or Bytes is meaningful,
// depending on WireType: Number holds the raw bits for WireVarint,
// WireFixed32, and WireFixed64 (the caller reinterprets them via
// AsInt32/AsFloat64/etc. below); Bytes holds the raw payload for
// WireBytes.
//
// Value is designed to be stack-allocated and reused across iterations
// of MessageEach/PackedRepeatedEach, matching molecule's zero-allocation
// goal: callers should read the fields they need out of a Value before
// the next iteration overwrites it, rather than retaining a Value.
type Value struct {
	WireType codec.WireType
	Number   uint64
	Bytes    []byte
}

// AsInt32 reinterprets a WireVarint value as a signed 32-bit integer
// using ordinary two's-complement truncation (not zigzag).
func (v Value) AsInt32() int32 {
	return int32(v.Number)
}

// AsInt64 reinterprets a WireVarint value as a signed 64-bit integer.
func (v Value) AsInt64() int64 {
	return int64(v.Number)
}

// AsUint32 reinterprets a WireVarint value as an unsigned 32-bit
// integer.
func (v Value) AsUint32() uint32 {
	return uint32(v.Number)
}

// AsUint64 returns a WireVarint value as-is.
func (v Value) AsUint64() uint64 {
	return v.Number
}

// AsBool reinterprets a WireVarint value as a boolean: zero is false,
// anything else is true.
func (v Value) AsBool() bool {
	return v.Number != 0
}

// AsSint32 zigzag-decodes a WireVarint value into a signed 32-bit
// integer.
func (v Value) AsSint32() int32 {
	return codec.DecodeZigZag32(v.Number)
}

// AsSint64 zigzag-decodes a WireVarint value into a signed 64-bit
// integer.
func (v Value) AsSint64() int64 {
	return codec.DecodeZigZag64(v.Number)
}

// AsFixed32 returns a WireFixed32 value as an unsigned 32-bit integer.
func (v Value) AsFixed32() uint32 {
	return uint32(v.Number)
}

// AsFixed64 returns a WireFixed64 value as an unsigned 64-bit integer.
func (v Value) AsFixed64() uint64 {
	return v.Number
}

// AsSfixed32 reinterprets a WireFixed32 value as signed.
func (v Value) AsSfixed32() int32 {
	return int32(v.Number)
}

// AsSfixed64 reinterprets a WireFixed64 value as signed.
func (v Value) AsSfixed64() int64 {
	return int64(v.Number)
}

// AsFloat32 reinterprets a WireFixed32 value as an IEEE-754 binary32
// float.
func (v Value) AsFloat32() float32 {
	return math.Float32frombits(uint32(v.Number))
}

// AsFloat64 reinterprets a WireFixed64 value as an IEEE-754 binary64
// float.
func (v Value) AsFloat64() float64 {
	return math.Float64frombits(v.Number)
}

// AsString decodes a WireBytes value's payload as UTF-8 text, tolerating
// malformed sequences the same way codec.Buffer.DecodeString does.
func (v Value) AsString() string {
	return codec.DecodeStringBytes(v.Bytes)
}
