package molecule

import (
	"fmt"
	"io"
)

// headerSize is the width of this library's streaming envelope: a full
// 5-byte big-endian length prefix. This is neither gRPC's 5-byte header
// (1 compressed-flag byte + 4-byte length) nor protobuf's own varint
// length-delimited framing; it's this library's own envelope for
// separating consecutive messages in a streamed response. The source
// this was distilled from only accumulated the low 4 bytes of this
// field, overwriting rather than folding in the top byte; this
// implementation treats all 5 bytes as significant, via a uint64
// intermediate (Go has no native uint40).
const headerSize = 5

// ReadHeader reads one streaming-envelope header from r: a 5-byte
// big-endian unsigned length. A length of zero, or r ending cleanly
// before the next header begins, signals the end of the stream;
// ReadHeader returns io.EOF itself (unwrapped) in both cases so callers
// can drive a normal loop-until-EOF.
func ReadHeader(r io.Reader) (uint64, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("ReadHeader: %w", err)
	}

	length := decodeHeader(hdr)
	if length == 0 {
		return 0, io.EOF
	}
	return length, nil
}

// decodeHeader reinterprets the 5-byte envelope as a big-endian length.
func decodeHeader(hdr [headerSize]byte) uint64 {
	return uint64(hdr[0])<<32 | uint64(hdr[1])<<24 | uint64(hdr[2])<<16 | uint64(hdr[3])<<8 | uint64(hdr[4])
}

// WriteHeader writes one streaming-envelope header to w: a 5-byte
// big-endian encoding of length. Writing a zero length terminates the
// stream for a reader driving ReadHeader in a loop.
func WriteHeader(w io.Writer, length uint64) error {
	hdr := [headerSize]byte{
		byte(length >> 32),
		byte(length >> 24),
		byte(length >> 16),
		byte(length >> 8),
		byte(length),
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("WriteHeader: %w", err)
	}
	return nil
}
