// Package enumdesc builds closed-enum validity sets from .proto source,
// for callers that want to reject unrecognized enum numbers during packed
// decode instead of accepting every int32 value.
//
// It reads only the enum{} blocks of a .proto file; it is not a general
// schema loader and the wire package never imports it.
package enumdesc

import (
	"fmt"
	"io"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	"github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/haldanekr/protowire/wire"
)

// Enum is the set of numeric values declared for one enum type.
type Enum struct {
	Name    string
	Numbers map[int32]struct{}
}

// Has reports whether v was declared as one of the enum's values.
func (e *Enum) Has(v int32) bool {
	_, ok := e.Numbers[v]
	return ok
}

// Set is a collection of enums keyed by name, as declared across one or
// more .proto files.
type Set struct {
	enums map[string]*Enum
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{enums: make(map[string]*Enum)}
}

// Enum looks up a previously loaded enum by name.
func (s *Set) Enum(name string) (*Enum, bool) {
	e, ok := s.enums[name]
	return e, ok
}

// Load parses r as a .proto file and merges every top-level and nested
// enum declaration it finds into s.
func (s *Set) Load(r io.Reader) error {
	proto, err := protoparser.Parse(r)
	if err != nil {
		return fmt.Errorf("enumdesc: parse: %w", err)
	}
	for _, body := range proto.ProtoBody {
		s.collect(body)
	}
	return nil
}

func (s *Set) collect(body interface{}) {
	switch v := body.(type) {
	case *parser.Enum:
		s.enums[v.EnumName] = enumFromBody(v.EnumName, v.EnumBody)
	case *parser.Message:
		for _, mb := range v.MessageBody {
			s.collect(mb)
		}
	}
}

func enumFromBody(name string, body []parser.Visitee) *Enum {
	e := &Enum{Name: name, Numbers: make(map[int32]struct{})}
	for _, item := range body {
		if f, ok := item.(*parser.EnumField); ok {
			e.Numbers[parseEnumNumber(f.Number)] = struct{}{}
		}
	}
	return e
}

func parseEnumNumber(raw string) int32 {
	var n int32
	var neg bool
	for i, c := range raw {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int32(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// Policy adapts the enum onto wire.EnumPolicy. The messageType and
// fieldNumber arguments are ignored; the policy answers purely from this
// one Enum's declared values, so callers that need per-field enum identity should wrap this
// with their own lookup keyed on field number.
func (e *Enum) Policy() wire.EnumPolicy {
	return func(_ string, _ wire.FieldNumber, value int32) bool {
		return e.Has(value)
	}
}
