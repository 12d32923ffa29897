package wire

import "fmt"

// WireFormat is the three-bit wire type carried in the low bits of every tag.
type WireFormat uint8

const (
	WireVarint         WireFormat = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64        WireFormat = 1 // fixed64, sfixed64, double
	WireBytes          WireFormat = 2 // string, bytes, embedded messages, packed repeated fields, map entries
	WireStartGroup     WireFormat = 3 // legacy proto2 group open
	WireEndGroup       WireFormat = 4 // legacy proto2 group close
	WireFixed32        WireFormat = 5 // fixed32, sfixed32, float
	maxValidWireFormat            = WireFixed32
)

// Valid reports whether w is one of the six defined wire formats.
func (w WireFormat) Valid() bool {
	switch w {
	case WireVarint, WireFixed64, WireBytes, WireStartGroup, WireEndGroup, WireFixed32:
		return true
	default:
		return false
	}
}

func (w WireFormat) String() string {
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
		return fmt.Sprintf("wire(%d)", uint8(w))
	}
}

// FieldNumber is a protobuf field number. Valid field numbers are in
// [1, 2^29-1]; the decoder does not separately special-case the
// message-set/reserved ranges beyond that bound.
type FieldNumber int32

const maxFieldNumber = 1<<29 - 1

// FieldTag is a decoded (field number, wire format) pair.
type FieldTag struct {
	Number FieldNumber
	Format WireFormat
}

// MakeTag combines a field number and wire format into its wire varint value.
func MakeTag(number FieldNumber, format WireFormat) uint64 {
	return uint64(number)<<3 | uint64(format)
}

// ParseTag splits a raw tag varint into its field number and wire format.
// It does not validate either component; callers that read tags off the
// wire should use Scanner.GetTag, which validates both.
func ParseTag(raw uint64) FieldTag {
	return FieldTag{
		Number: FieldNumber(raw >> 3),
		Format: WireFormat(raw & 0x7),
	}
}
