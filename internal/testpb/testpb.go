// Package testpb holds hand-written stand-ins for protoc-gen-go output,
// used only by this module's own tests. Each type implements
// wire.MessageHandler directly instead of through generated reflection,
// the way a real generated message would wire a DecodeField switch into
// its own fields.
package testpb

import "github.com/haldanekr/protowire/wire"

// Scalars declares one singular field per scalar ScalarKind, plus one
// packed int32 field and one repeated string field. DecodeField does not
// populate Unknown; unclaimed fields are left to the Decoder.
type Scalars struct {
	I32  int32
	I64  int64
	U32  uint32
	U64  uint64
	S32  int32 // sint32
	S64  int64 // sint64
	B    bool
	E    int32 // enum
	F32  uint32
	F64  uint64
	SF32 int32
	SF64 int64
	Flt  float32
	Dbl  float64
	Str  string
	Byts []byte

	RepI32 []int32
	RepStr []string

	Unknown []byte
}

const (
	fieldI32 wire.FieldNumber = 1
	fieldI64 wire.FieldNumber = 2
	fieldU32 wire.FieldNumber = 3
	fieldU64 wire.FieldNumber = 4
	fieldS32 wire.FieldNumber = 5
	fieldS64 wire.FieldNumber = 6
	fieldB   wire.FieldNumber = 7
	fieldE   wire.FieldNumber = 8
	fieldF32 wire.FieldNumber = 9
	fieldF64 wire.FieldNumber = 10
	fieldSF32 wire.FieldNumber = 11
	fieldSF64 wire.FieldNumber = 12
	fieldFlt wire.FieldNumber = 13
	fieldDbl wire.FieldNumber = 14
	fieldStr wire.FieldNumber = 15
	fieldByts wire.FieldNumber = 16
	fieldRepI32 wire.FieldNumber = 17
	fieldRepStr wire.FieldNumber = 18
)

func (m *Scalars) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	var ok bool
	var err error
	switch number {
	case fieldI32:
		ok, err = dec.DecodeSingular(wire.KindInt32, &m.I32)
	case fieldI64:
		ok, err = dec.DecodeSingular(wire.KindInt64, &m.I64)
	case fieldU32:
		ok, err = dec.DecodeSingular(wire.KindUint32, &m.U32)
	case fieldU64:
		ok, err = dec.DecodeSingular(wire.KindUint64, &m.U64)
	case fieldS32:
		ok, err = dec.DecodeSingular(wire.KindSint32, &m.S32)
	case fieldS64:
		ok, err = dec.DecodeSingular(wire.KindSint64, &m.S64)
	case fieldB:
		ok, err = dec.DecodeSingular(wire.KindBool, &m.B)
	case fieldE:
		ok, err = dec.DecodeSingular(wire.KindEnum, &m.E)
	case fieldF32:
		ok, err = dec.DecodeSingular(wire.KindFixed32, &m.F32)
	case fieldF64:
		ok, err = dec.DecodeSingular(wire.KindFixed64, &m.F64)
	case fieldSF32:
		ok, err = dec.DecodeSingular(wire.KindSfixed32, &m.SF32)
	case fieldSF64:
		ok, err = dec.DecodeSingular(wire.KindSfixed64, &m.SF64)
	case fieldFlt:
		ok, err = dec.DecodeSingular(wire.KindFloat, &m.Flt)
	case fieldDbl:
		ok, err = dec.DecodeSingular(wire.KindDouble, &m.Dbl)
	case fieldStr:
		ok, err = dec.DecodeSingular(wire.KindString, &m.Str)
	case fieldByts:
		ok, err = dec.DecodeSingular(wire.KindBytes, &m.Byts)
	case fieldRepI32:
		ok, err = dec.DecodePacked(wire.KindInt32, &m.RepI32)
	case fieldRepStr:
		ok, err = dec.DecodeRepeated(wire.KindString, &m.RepStr)
	default:
		return nil
	}
	_ = ok
	return err
}

// Inner is a minimal embedded message used by Grouped.
type Inner struct {
	Value int32
}

func (m *Inner) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 1 {
		_, err := dec.DecodeSingular(wire.KindInt32, &m.Value)
		return err
	}
	return nil
}

// Recursive nests itself at field 1, for exercising maximum-depth
// enforcement against an arbitrarily deep chain of embedded messages.
type Recursive struct {
	Child *Recursive
	Leaf  int32
}

func (m *Recursive) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	switch number {
	case 1:
		_, err := dec.DecodeSingularMessage(func() wire.MessageHandler { return &Recursive{} }, func(h wire.MessageHandler) {
			m.Child = h.(*Recursive)
		})
		return err
	case 2:
		_, err := dec.DecodeSingular(wire.KindInt32, &m.Leaf)
		return err
	}
	return nil
}

// InnerAtField2 is an embedded message whose one declared field sits at
// field number 2, distinct from Inner's field number 1, so Outer matches
// its scenario's wire bytes exactly.
type InnerAtField2 struct {
	Value int32
}

func (m *InnerAtField2) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 2 {
		_, err := dec.DecodeSingular(wire.KindInt32, &m.Value)
		return err
	}
	return nil
}

// Outer has a singular embedded message at field 1; every other field
// number is left to unknown-field preservation, matching the nested
// message scenario used to test unknown-field round-tripping.
type Outer struct {
	Field1 *InnerAtField2
}

func (m *Outer) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 1 {
		_, err := dec.DecodeSingularMessage(func() wire.MessageHandler { return &InnerAtField2{} }, func(h wire.MessageHandler) {
			m.Field1 = h.(*InnerAtField2)
		})
		return err
	}
	return nil
}

// Grouped exercises the legacy group wire format at field number 4.
type Grouped struct {
	Group *Inner
}

func (m *Grouped) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 4 {
		_, err := dec.DecodeSingularGroup(func() wire.MessageHandler { return &Inner{} }, func(h wire.MessageHandler) {
			m.Group = h.(*Inner)
		})
		return err
	}
	return nil
}

// StringIntMap exercises map<string,int32> decode via wire.MapEntryCodec.
type StringIntMap struct {
	Entries map[string]int32
}

func (m *StringIntMap) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 1 {
		_, err := dec.DecodeMap(&stringIntEntry{m: m})
		return err
	}
	return nil
}

type stringIntEntry struct {
	m     *StringIntMap
	key   string
	value int32
}

func (e *stringIntEntry) DecodeKey(dec wire.FieldDecoder) (bool, error) {
	return dec.DecodeSingular(wire.KindString, &e.key)
}

func (e *stringIntEntry) DecodeValue(dec wire.FieldDecoder) (bool, error) {
	return dec.DecodeSingular(wire.KindInt32, &e.value)
}

func (e *stringIntEntry) Insert() error {
	if e.m.Entries == nil {
		e.m.Entries = make(map[string]int32)
	}
	e.m.Entries[e.key] = e.value
	return nil
}

// Extendable has one declared field and accepts extensions for anything
// else via an ExtensionResolver supplied to the Decoder.
type Extendable struct {
	Known int32
}

func (m *Extendable) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 1 {
		_, err := dec.DecodeSingular(wire.KindInt32, &m.Known)
		return err
	}
	return nil
}

func (m *Extendable) MessageTypeName() string { return "testpb.Extendable" }

// PriceExtension is a typical extension field value: a single scalar
// bound to one field number on Extendable.
type PriceExtension struct {
	Cents int64
}

func (m *PriceExtension) DecodeField(dec wire.FieldDecoder, number wire.FieldNumber) error {
	if number == 100 {
		_, err := dec.DecodeSingular(wire.KindInt64, &m.Cents)
		return err
	}
	return nil
}
