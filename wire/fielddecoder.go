package wire

// ScalarKind identifies the Go-level scalar interpretation a setter should
// apply when reading a field's wire value. It lets FieldDecoder expose one
// small family of capability methods (as suggested for a systems port)
// instead of one method per Go scalar type.
type ScalarKind int

const (
	KindInt32 ScalarKind = iota
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindBool
	KindEnum
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
)

// MessageHandler is the generated-message-surface contract: given a field
// number, select the setter on dec appropriate to the message's schema.
// Returning without calling any setter leaves the field unclaimed; the
// driver then consults extensions and, failing that, preserves it as
// unknown.
type MessageHandler interface {
	DecodeField(dec FieldDecoder, number FieldNumber) error
}

// ExtendableMessage is implemented by message handlers that accept
// extension fields. MessageTypeName is the key under which the Decoder's
// ExtensionResolver is consulted for fields the handler declines.
type ExtendableMessage interface {
	MessageHandler
	MessageTypeName() string
}

// MessageFactory produces a fresh, zero-valued message handler for a
// singular or repeated embedded message/group field.
type MessageFactory func() MessageHandler

// MapEntryCodec lets a map field's FieldDecoder build and insert one
// decoded (key, value) pair without knowing the map's concrete Go types.
type MapEntryCodec interface {
	// DecodeKey is invoked for map entry field number 1.
	DecodeKey(dec FieldDecoder) (bool, error)
	// DecodeValue is invoked for map entry field number 2.
	DecodeValue(dec FieldDecoder) (bool, error)
	// Insert is called once per entry after both key and value have been
	// read, or fails MalformedProtobuf if either was never seen.
	Insert() error
}

// FieldDecoder is the uniform capability surface the decoder driver hands
// to a MessageHandler for one field. Only the methods whose wire
// interpretation matches the field's actual wire format succeed; all
// others decline (ok == false, err == nil) rather than erroring, so a
// handler probing the wrong shape behaves like an unrecognized field.
type FieldDecoder interface {
	// Consumed reports whether any setter has succeeded for this field.
	Consumed() bool

	DecodeSingular(kind ScalarKind, dst any) (bool, error)
	DecodeRepeated(kind ScalarKind, dst any) (bool, error)
	DecodePacked(kind ScalarKind, dst any) (bool, error)

	DecodeSingularMessage(factory MessageFactory, set func(MessageHandler)) (bool, error)
	DecodeRepeatedMessage(factory MessageFactory, collect func(MessageHandler)) (bool, error)

	DecodeSingularGroup(factory MessageFactory, set func(MessageHandler)) (bool, error)
	DecodeRepeatedGroup(factory MessageFactory, collect func(MessageHandler)) (bool, error)

	DecodeMap(codec MapEntryCodec) (bool, error)
}

// unsupportedSetters is embedded by every concrete FieldDecoder variant so
// that a method not meaningful for that variant's wire format has a
// default "decline" body; the variant then shadows only the methods it
// actually supports. Go has no default interface methods, so embedding a
// base struct that implements the whole interface is the idiomatic
// stand-in.
type unsupportedSetters struct{}

func (unsupportedSetters) Consumed() bool { return false }

func (unsupportedSetters) DecodeSingular(ScalarKind, any) (bool, error)      { return false, nil }
func (unsupportedSetters) DecodeRepeated(ScalarKind, any) (bool, error)      { return false, nil }
func (unsupportedSetters) DecodePacked(ScalarKind, any) (bool, error)        { return false, nil }
func (unsupportedSetters) DecodeSingularMessage(MessageFactory, func(MessageHandler)) (bool, error) {
	return false, nil
}
func (unsupportedSetters) DecodeRepeatedMessage(MessageFactory, func(MessageHandler)) (bool, error) {
	return false, nil
}
func (unsupportedSetters) DecodeSingularGroup(MessageFactory, func(MessageHandler)) (bool, error) {
	return false, nil
}
func (unsupportedSetters) DecodeRepeatedGroup(MessageFactory, func(MessageHandler)) (bool, error) {
	return false, nil
}
func (unsupportedSetters) DecodeMap(MapEntryCodec) (bool, error) { return false, nil }
