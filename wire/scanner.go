package wire

import "encoding/binary"

// Scanner is a cursor over a borrowed, immutable byte range. It produces
// tags and primitive numeric values and supports skip-with-rewind so that
// an unclaimed field's raw wire bytes can be recovered for unknown-field
// preservation.
//
// A Scanner never copies its input; callers that need owned bytes (e.g.
// for a string field) must copy out of the slices it returns.
type Scanner struct {
	buf        []byte
	pos        int
	fieldStart int
	fieldEnd   int // -1 until skip() has run or a length-delimited payload has been bound for this field
	lastFormat WireFormat
}

// NewScanner returns a Scanner positioned at the start of buf.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf, fieldEnd: -1}
}

func (s *Scanner) remaining() int { return len(s.buf) - s.pos }

// GetTag reads one tag. ok is false only at a clean end of input
// (remaining == 0 before any byte is read); any other failure to produce
// a valid tag is an error.
func (s *Scanner) GetTag() (tag FieldTag, ok bool, err error) {
	if s.remaining() == 0 {
		return FieldTag{}, false, nil
	}
	s.fieldStart = s.pos
	s.fieldEnd = -1

	raw, gotByte, err := s.getRawVarint()
	if err != nil {
		return FieldTag{}, false, err
	}
	if !gotByte {
		return FieldTag{}, false, truncated(s.fieldStart, "end of input reading tag")
	}
	if raw >= 1<<32 {
		return FieldTag{}, false, malformed(s.fieldStart, "tag varint %d exceeds 32 bits", raw)
	}
	parsed := ParseTag(raw)
	if !parsed.Format.Valid() {
		return FieldTag{}, false, malformed(s.fieldStart, "undefined wire format %d", uint8(parsed.Format))
	}
	if parsed.Number == 0 {
		return FieldTag{}, false, malformed(s.fieldStart, "field number zero")
	}
	s.lastFormat = parsed.Format
	return parsed, true, nil
}

// getRawVarint reads up to 10 bytes of a base-128 varint. ok is false only
// when remaining == 0 before the first byte is read.
func (s *Scanner) getRawVarint() (value uint64, ok bool, err error) {
	if s.remaining() == 0 {
		return 0, false, nil
	}
	start := s.pos
	var result uint64
	var shift uint
	for i := 0; i < 10; i++ {
		if s.pos >= len(s.buf) {
			return 0, false, truncated(start, "end of input mid-varint")
		}
		b := s.buf[s.pos]
		s.pos++
		if i == 9 && b&0x80 != 0 {
			return 0, false, malformed(start, "varint longer than 10 bytes")
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, true, nil
		}
		shift += 7
	}
	return 0, false, malformed(start, "varint longer than 10 bytes")
}

// readFixed32 copies 4 little-endian bytes into a uint32.
func (s *Scanner) readFixed32() (uint32, error) {
	if s.remaining() < 4 {
		return 0, truncated(s.pos, "need 4 bytes for fixed32, have %d", s.remaining())
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v, nil
}

// readFixed64 copies 8 little-endian bytes into a uint64.
func (s *Scanner) readFixed64() (uint64, error) {
	if s.remaining() < 8 {
		return 0, truncated(s.pos, "need 8 bytes for fixed64, have %d", s.remaining())
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v, nil
}

// skip advances past the current field (the one whose tag was last read
// by GetTag). If fieldEnd is already known it jumps there directly;
// otherwise it rewinds to fieldStart, re-reads the tag, and replays
// skipOver.
func (s *Scanner) skip() error {
	if s.fieldEnd >= 0 {
		s.pos = s.fieldEnd
		return nil
	}
	start := s.fieldStart
	s.pos = start
	raw, gotByte, err := s.getRawVarint()
	if err != nil {
		return err
	}
	if !gotByte {
		return truncated(start, "end of input re-reading tag")
	}
	tag := ParseTag(raw)
	if err := s.skipOver(tag); err != nil {
		return err
	}
	// skipGroup reads inner tags through GetTag, which moves fieldStart.
	s.fieldStart = start
	s.fieldEnd = s.pos
	return nil
}

// skipOver advances past the payload belonging to tag, whose bytes have
// already been consumed by the caller.
func (s *Scanner) skipOver(tag FieldTag) error {
	switch tag.Format {
	case WireVarint:
		_, gotByte, err := s.getRawVarint()
		if err != nil {
			return err
		}
		if !gotByte {
			return truncated(s.pos, "end of input skipping varint")
		}
	case WireFixed64:
		if s.remaining() < 8 {
			return truncated(s.pos, "end of input skipping fixed64")
		}
		s.pos += 8
	case WireFixed32:
		if s.remaining() < 4 {
			return truncated(s.pos, "end of input skipping fixed32")
		}
		s.pos += 4
	case WireBytes:
		n, gotByte, err := s.getRawVarint()
		if err != nil {
			return err
		}
		if !gotByte {
			return truncated(s.pos, "end of input skipping length prefix")
		}
		if n > uint64(s.remaining()) {
			return malformed(s.pos, "length %d exceeds remaining %d bytes", n, s.remaining())
		}
		s.pos += int(n)
	case WireStartGroup:
		return s.skipGroup(tag.Number)
	case WireEndGroup:
		return malformed(s.fieldStart, "end group without matching start group")
	default:
		return malformed(s.fieldStart, "undefined wire format %d", uint8(tag.Format))
	}
	return nil
}

// skipGroup consumes tags until it sees EndGroup with a matching field
// number, recursively skipping everything else (including nested groups).
func (s *Scanner) skipGroup(number FieldNumber) error {
	for {
		inner, ok, err := s.GetTag()
		if err != nil {
			return err
		}
		if !ok {
			return truncated(s.pos, "end of input inside group %d", number)
		}
		if inner.Number == number && inner.Format == WireEndGroup {
			return nil
		}
		if inner.Number == number {
			return malformed(s.fieldStart, "field number %d reused with mismatched wire format inside group", number)
		}
		if err := s.skipOver(inner); err != nil {
			return err
		}
	}
}

// getRawField returns the on-the-wire bytes of the entire current field,
// tag included, running skip() if the field's extent isn't known yet.
func (s *Scanner) getRawField() ([]byte, error) {
	if err := s.skip(); err != nil {
		return nil, err
	}
	return s.buf[s.fieldStart:s.fieldEnd], nil
}
