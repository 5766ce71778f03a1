package codec

// FieldType is the logical protobuf declared type of a field, independent
// of the wire type used to encode it. Numbering matches the standard
// FieldDescriptorProto.Type enum so callers that already have a
// generated descriptor can pass its value straight through.
type FieldType int8

const (
	FieldType_DOUBLE   FieldType = 1
	FieldType_FLOAT    FieldType = 2
	FieldType_INT64    FieldType = 3
	FieldType_UINT64   FieldType = 4
	FieldType_INT32    FieldType = 5
	FieldType_FIXED64  FieldType = 6
	FieldType_FIXED32  FieldType = 7
	FieldType_BOOL     FieldType = 8
	FieldType_STRING   FieldType = 9
	FieldType_GROUP    FieldType = 10 // invalid, never supported
	FieldType_MESSAGE  FieldType = 11
	FieldType_BYTES    FieldType = 12
	FieldType_UINT32   FieldType = 13
	FieldType_ENUM     FieldType = 14
	FieldType_SFIXED32 FieldType = 15
	FieldType_SFIXED64 FieldType = 16
	FieldType_SINT32   FieldType = 17
	FieldType_SINT64   FieldType = 18
)

// WireType returns the wire type used to encode values of ft, and false
// if ft has no valid wire representation (GROUP, or an unrecognized
// value).
func (ft FieldType) WireType() (WireType, bool) {
	switch ft {
	case FieldType_INT32, FieldType_INT64, FieldType_UINT32, FieldType_UINT64,
		FieldType_SINT32, FieldType_SINT64, FieldType_BOOL, FieldType_ENUM:
		return WireVarint, true
	case FieldType_FIXED64, FieldType_SFIXED64, FieldType_DOUBLE:
		return WireFixed64, true
	case FieldType_FIXED32, FieldType_SFIXED32, FieldType_FLOAT:
		return WireFixed32, true
	case FieldType_STRING, FieldType_MESSAGE, FieldType_BYTES:
		return WireBytes, true
	default:
		return 0, false
	}
}

// ValidMapKey reports whether ft may be used as a protobuf map key.
// DOUBLE, FLOAT, and BYTES are excluded per the wire-format spec.
func (ft FieldType) ValidMapKey() bool {
	switch ft {
	case FieldType_DOUBLE, FieldType_FLOAT, FieldType_BYTES,
		FieldType_MESSAGE, FieldType_GROUP:
		return false
	}
	_, ok := ft.WireType()
	return ok
}

// ValidMapValue reports whether ft may be used as a protobuf map value.
// Only GROUP (and, by construction, maps-of-maps, which this codec has
// no type code for) are excluded.
func (ft FieldType) ValidMapValue() bool {
	if ft == FieldType_GROUP {
		return false
	}
	_, ok := ft.WireType()
	return ok
}
