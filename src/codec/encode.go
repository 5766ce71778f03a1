package codec

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

// This file is the write-side companion to decode.go. Upstream molecule
// is decode-only; these functions follow the same unconditional,
// slice-append idiom DecodeVarint et al. use on the read side, mirrored
// for writing. None of them validate range or field identity -- that is
// the Writer's job, one layer up.

// AppendUvarint appends the base-128 little-endian encoding of u: low 7
// payload bits per byte, high bit set on every byte but the last. This is
// the format for the int32, int64, uint32, uint64, bool, and enum
// protocol buffer types (after zigzag folding, for the signed ones).
func AppendUvarint(buf []byte, u uint64) []byte {
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}

// AppendVarint32 appends the canonical protobuf encoding of a signed
// 32-bit value. Non-negative values use the ordinary unsigned varint
// form. Negative values are sign-extended to 64 bits before encoding, so
// the result is always the full 10-byte form -- this matches what a
// reference protoc-generated encoder emits for a negative int32, and is
// required for Varint32/Varint64 interop (a reader decoding the field as
// 64-bit must recover the same sign-extended value).
func AppendVarint32(buf []byte, s int32) []byte {
	if s >= 0 {
		return AppendUvarint(buf, uint64(s))
	}
	return AppendUvarint(buf, uint64(int64(s)))
}

// AppendVarint appends the canonical protobuf encoding of a signed
// 64-bit value: the unsigned form of its two's-complement bit pattern.
func AppendVarint(buf []byte, s int64) []byte {
	return AppendUvarint(buf, uint64(s))
}

// AppendZigzag32 zigzag-folds n and appends it as an unsigned varint.
// Folding maps small-magnitude negative numbers to small unsigned
// values, avoiding the 10-byte sign-extended form AppendVarint32 would
// otherwise produce.
func AppendZigzag32(buf []byte, n int32) []byte {
	return AppendUvarint(buf, uint64(uint32(n<<1)^uint32(n>>31)))
}

// AppendZigzag64 zigzag-folds n and appends it as an unsigned varint.
func AppendZigzag64(buf []byte, n int64) []byte {
	return AppendUvarint(buf, uint64(n<<1)^uint64(n>>63))
}

// AppendFixed32 appends u as four little-endian bytes.
func AppendFixed32(buf []byte, u uint32) []byte {
	return append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
}

// AppendFixed64 appends u as eight little-endian bytes.
func AppendFixed64(buf []byte, u uint64) []byte {
	return append(buf,
		byte(u), byte(u>>8), byte(u>>16), byte(u>>24),
		byte(u>>32), byte(u>>40), byte(u>>48), byte(u>>56))
}

// AppendFloat32 appends f as a little-endian binary32 value.
func AppendFloat32(buf []byte, f float32) []byte {
	return AppendFixed32(buf, math.Float32bits(f))
}

// AppendFloat64 appends f as a little-endian binary64 value.
func AppendFloat64(buf []byte, f float64) []byte {
	return AppendFixed64(buf, math.Float64bits(f))
}

// AppendBool appends a single 0x00 or 0x01 byte.
func AppendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// AppendBytes copies raw onto buf verbatim. The source this was adapted
// from used a spread-style call that silently appended nothing; this
// copies every byte of raw, which is the only behavior that keeps
// Bytes/String round-tripping.
func AppendBytes(buf []byte, raw []byte) []byte {
	return append(buf, raw...)
}

// AppendString UTF-8 encodes s and appends it to buf. Go strings are
// already a UTF-8 byte sequence (the runtime has no separate UTF-16
// domain the way the source this was distilled from did), so no
// surrogate-pair recombination is needed: this is a direct byte copy,
// equivalent in output to re-encoding s rune by rune.
func AppendString(buf []byte, s string) []byte {
	return append(buf, s...)
}

// EncodeUTF16String is provided for callers bridging from a UTF-16 code
// unit sequence (for example, data decoded from a wire format that
// stores text as UTF-16, or ported from a JavaScript/Java caller). It
// recombines surrogate pairs into their code point before UTF-8
// encoding, matching the source algorithm's surrogate-pair handling.
func EncodeUTF16String(buf []byte, units []uint16) []byte {
	runes := utf16.Decode(units)
	var b [utf8.UTFMax]byte
	for _, r := range runes {
		n := utf8.EncodeRune(b[:], r)
		buf = append(buf, b[:n]...)
	}
	return buf
}
