package wire

import "testing"

func TestScannerGetTagSingleVarint(t *testing.T) {
	s := NewScanner([]byte{0x08, 0x96, 0x01})
	tag, ok, err := s.GetTag()
	if err != nil || !ok {
		t.Fatalf("GetTag: ok=%v err=%v", ok, err)
	}
	if tag.Number != 1 || tag.Format != WireVarint {
		t.Fatalf("got tag %+v", tag)
	}
	raw, gotByte, err := s.getRawVarint()
	if err != nil || !gotByte {
		t.Fatalf("getRawVarint: gotByte=%v err=%v", gotByte, err)
	}
	if raw != 150 {
		t.Fatalf("got %d, want 150", raw)
	}
}

func TestScannerGetTagCleanEOF(t *testing.T) {
	s := NewScanner(nil)
	_, ok, err := s.GetTag()
	if err != nil || ok {
		t.Fatalf("expected clean EOF, got ok=%v err=%v", ok, err)
	}
}

func TestScannerGetTagMalformedWireFormat(t *testing.T) {
	// low 3 bits = 6, an undefined wire format.
	s := NewScanner([]byte{0x0E})
	_, _, err := s.GetTag()
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*MalformedProtobufError); !ok {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestScannerGetTagZeroFieldNumber(t *testing.T) {
	s := NewScanner([]byte{0x00})
	_, _, err := s.GetTag()
	if _, ok := err.(*MalformedProtobufError); !ok {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestScannerVarintOverlong(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf[10] = 0x80 // continuation set on the 11th byte
	s := NewScanner(buf)
	_, _, err := s.getRawVarint()
	if _, ok := err.(*MalformedProtobufError); !ok {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestScannerSkipOverLengthPrefixExceedsRemaining(t *testing.T) {
	s := NewScanner([]byte{0x12, 0x07, 't', 'e'})
	tag, ok, err := s.GetTag()
	if err != nil || !ok {
		t.Fatalf("GetTag: %v %v", ok, err)
	}
	if err := s.skipOver(tag); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*MalformedProtobufError); !ok {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestScannerGetRawFieldRoundTrip(t *testing.T) {
	buf := []byte{0x12, 0x07, 't', 'e', 's', 't', 'i', 'n', 'g'}
	s := NewScanner(buf)
	if _, ok, err := s.GetTag(); err != nil || !ok {
		t.Fatalf("GetTag: %v %v", ok, err)
	}
	raw, err := s.getRawField()
	if err != nil {
		t.Fatalf("getRawField: %v", err)
	}
	if string(raw) != string(buf) {
		t.Fatalf("got %x, want %x", raw, buf)
	}
	if s.remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", s.remaining())
	}
}
