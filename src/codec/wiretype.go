package codec

// WireType is the 3-bit payload-shape tag carried in the low bits of every
// field tag.
type WireType int8

const (
	WireVarint     WireType = 0
	WireFixed64    WireType = 1
	WireBytes      WireType = 2
	WireStartGroup WireType = 3
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5
)

// Valid reports whether w is one of the four wire types this codec
// supports. GROUP wire types are deliberately excluded: the wire format
// deprecated them and this library rejects them rather than round-trip
// them.
func (w WireType) Valid() bool {
	switch w {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	default:
		return false
	}
}

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return "unknown"
	}
}
