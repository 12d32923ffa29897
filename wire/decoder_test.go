package wire

import (
	"errors"
	"testing"
)

// singularInt32 is the smallest possible MessageHandler: one field,
// decoded as a plain (non-zigzag) varint.
type singularInt32 struct {
	number int32
	value  int32
	seen   bool
}

type singularSint32 struct {
	number int32
	value  int32
	seen   bool
}

type singularString struct {
	number int32
	value  string
	seen   bool
}

func (m *singularInt32) DecodeField(dec FieldDecoder, number FieldNumber) error {
	if int32(number) == m.number {
		ok, err := dec.DecodeSingular(KindInt32, &m.value)
		m.seen = ok
		return err
	}
	return nil
}

func (m *singularSint32) DecodeField(dec FieldDecoder, number FieldNumber) error {
	if int32(number) == m.number {
		ok, err := dec.DecodeSingular(KindSint32, &m.value)
		m.seen = ok
		return err
	}
	return nil
}

func (m *singularString) DecodeField(dec FieldDecoder, number FieldNumber) error {
	if int32(number) == m.number {
		ok, err := dec.DecodeSingular(KindString, &m.value)
		m.seen = ok
		return err
	}
	return nil
}

func TestDecodeSingleVarintField(t *testing.T) {
	m := &singularInt32{number: 1}
	dec := NewDecoder([]byte{0x08, 0x96, 0x01})
	if err := dec.DecodeFullObject(m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !m.seen || m.value != 150 {
		t.Fatalf("got seen=%v value=%d, want 150", m.seen, m.value)
	}
}

func TestDecodeZigZag(t *testing.T) {
	cases := []struct {
		in   []byte
		want int32
	}{
		{[]byte{0x08, 0x03}, -2},
		{[]byte{0x08, 0x02}, 1},
	}
	for _, c := range cases {
		m := &singularSint32{number: 1}
		dec := NewDecoder(c.in)
		if err := dec.DecodeFullObject(m); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if m.value != c.want {
			t.Fatalf("got %d, want %d", m.value, c.want)
		}
	}
}

func TestDecodeLengthDelimitedString(t *testing.T) {
	m := &singularString{number: 2}
	in := []byte{0x12, 0x07, 't', 'e', 's', 't', 'i', 'n', 'g'}
	dec := NewDecoder(in)
	if err := dec.DecodeFullObject(m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.value != "testing" {
		t.Fatalf("got %q, want testing", m.value)
	}
}

func TestDecodeTruncatedVarintField(t *testing.T) {
	m := &singularInt32{number: 1}
	dec := NewDecoder([]byte{0x08})
	err := dec.DecodeFullObject(m)
	if err == nil {
		t.Fatal("expected error")
	}
	var te *TruncatedInputError
	if !errors.As(err, &te) {
		t.Fatalf("got %T: %v, want TruncatedInputError", err, err)
	}
}

func TestDecodeMalformedTag(t *testing.T) {
	for _, b := range []byte{0x06, 0x07} {
		m := &singularInt32{number: 1}
		dec := NewDecoder([]byte{b})
		err := dec.DecodeFullObject(m)
		var me *MalformedProtobufError
		if !errors.As(err, &me) {
			t.Fatalf("byte %#x: got %T: %v, want MalformedProtobufError", b, err, err)
		}
	}
}

func TestDecodeUnknownFieldPreservedVerbatim(t *testing.T) {
	m := &singularInt32{number: 1}
	// field 1 = 5 (known), field 2 = "hi" (unknown, length-delimited)
	in := []byte{0x08, 0x05, 0x12, 0x02, 'h', 'i'}
	dec := NewDecoder(in)
	if err := dec.DecodeFullObject(m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []byte{0x12, 0x02, 'h', 'i'}
	got := dec.UnknownFields()
	if string(got) != string(want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestDecodeTruncatedAtEveryPrefixLength(t *testing.T) {
	full := []byte{0x12, 0x07, 't', 'e', 's', 't', 'i', 'n', 'g'}
	for n := 1; n < len(full); n++ {
		m := &singularString{number: 2}
		dec := NewDecoder(full[:n])
		err := dec.DecodeFullObject(m)
		if err == nil {
			t.Fatalf("prefix length %d: expected failure, got success", n)
		}
	}
}
