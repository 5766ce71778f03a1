package molecule

import (
	"fmt"

	"github.com/kevinconaway/molecule/src/codec"
)

// MessageDeserializerFn decodes a nested message out of buffer. It is
// the "deserialize-from-reader" capability client-generated message
// types provide (spec section 6): implementations iterate
// MessageEach/PackedRepeatedEach over buffer themselves.
type MessageDeserializerFn func(buffer *codec.Buffer) error

// Message decodes a length-delimited embedded message field. It reads
// the length-delimited payload out of the parent buffer (which, by
// virtue of DecodeRawBytes, advances the parent's cursor past the whole
// declared length regardless of how much of it fn actually consumes)
// and hands fn a fresh *codec.Buffer scoped to exactly that payload.
//
// This is how this library satisfies the save/restore-end invariant for
// nested descent: rather than mutating a shared end bound on one
// Buffer, the nested decode gets its own Buffer over a sub-slice, so
// there's nothing to restore on the way out.
func Message(buffer *codec.Buffer, fn MessageDeserializerFn) error {
	raw, err := buffer.DecodeRawBytes(false)
	if err != nil {
		return fmt.Errorf("Message: error reading embedded message: %w", err)
	}
	nested := codec.NewBuffer(raw)
	if err := fn(nested); err != nil {
		return fmt.Errorf("Message: error decoding embedded message: %w", err)
	}
	return nil
}
