package molecule

import "errors"

// ErrInvalidFieldNumber is returned by Writer methods when the caller
// supplies a field number less than 1.
var ErrInvalidFieldNumber = errors.New("molecule: invalid field number")

// ErrRangeViolation is returned by Writer methods when value falls
// outside the domain declared for the target field type (for example,
// an Int32 call with a value outside [-2^31, 2^31)).
var ErrRangeViolation = errors.New("molecule: value outside field domain")

// ErrInvalidMapFieldType is returned when a map key or value field type
// is not supported for maps (DOUBLE/FLOAT/BYTES as a key, or any type
// with no wire representation as a value).
var ErrInvalidMapFieldType = errors.New("molecule: field type not valid for map key or value")

// ErrLengthLimit mirrors codec.ErrLengthLimit at the Writer layer, for
// String/Bytes writes whose payload exceeds the declared length limit.
var ErrLengthLimit = errors.New("molecule: length exceeds limit")
