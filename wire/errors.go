package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Match decode failures with errors.Is against these
// rather than type-asserting the concrete error types, which carry
// positional detail useful for diagnostics but are not part of the
// matching contract.
var (
	ErrMalformedProtobuf = errors.New("malformed protobuf")
	ErrTruncatedInput    = errors.New("truncated protobuf input")
	ErrTrailingGarbage   = errors.New("trailing garbage after message")
)

// MalformedProtobufError reports structurally invalid input: an overlong
// varint, an undefined wire type, an EndGroup without a matching
// StartGroup, a length prefix exceeding the remaining input, a map entry
// missing its key or value, or a zero field number.
type MalformedProtobufError struct {
	Offset int
	Reason string
}

func (e *MalformedProtobufError) Error() string {
	return fmt.Sprintf("malformed protobuf at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedProtobufError) Is(target error) bool { return target == ErrMalformedProtobuf }
func (e *MalformedProtobufError) Unwrap() error        { return ErrMalformedProtobuf }

func malformed(offset int, format string, args ...interface{}) error {
	return &MalformedProtobufError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// TruncatedInputError reports input that ended in the middle of a value.
type TruncatedInputError struct {
	Offset int
	Reason string
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated protobuf input at offset %d: %s", e.Offset, e.Reason)
}

func (e *TruncatedInputError) Is(target error) bool { return target == ErrTruncatedInput }
func (e *TruncatedInputError) Unwrap() error        { return ErrTruncatedInput }

func truncated(offset int, format string, args ...interface{}) error {
	return &TruncatedInputError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// TrailingGarbageError reports bytes left over after a logically complete
// top-level decode.
type TrailingGarbageError struct {
	Offset    int
	Remaining int
}

func (e *TrailingGarbageError) Error() string {
	return fmt.Sprintf("trailing garbage at offset %d: %d bytes remaining", e.Offset, e.Remaining)
}

func (e *TrailingGarbageError) Is(target error) bool { return target == ErrTrailingGarbage }
func (e *TrailingGarbageError) Unwrap() error        { return ErrTrailingGarbage }

// FieldError wraps a decode error with the chain of field numbers that led
// to it, outermost first.
type FieldError struct {
	Path []FieldNumber
	Err  error
}

func (e *FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	parts := make([]string, len(e.Path))
	for i, n := range e.Path {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("field %s: %v", strings.Join(parts, "."), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// wrapField prepends number to err's field path, or starts a new one.
func wrapField(err error, number FieldNumber) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Path: append([]FieldNumber{number}, fe.Path...), Err: fe.Err}
	}
	return &FieldError{Path: []FieldNumber{number}, Err: err}
}
