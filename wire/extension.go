package wire

// ExtensionResolver maps a (message type name, field number) pair to a
// factory for the extension field's value, consulted by the decoder
// driver only after the message handler itself has declined a field.
// Implementations must be safe for concurrent read-only use: multiple
// Decoders may share one resolver across disjoint inputs.
type ExtensionResolver interface {
	Resolve(messageType string, number FieldNumber) (MessageFactory, bool)
}

// ExtensionTable is a simple, static ExtensionResolver backed by a map,
// sufficient for tests and for callers that know their extension set
// ahead of time.
type ExtensionTable struct {
	entries map[extensionKey]MessageFactory
}

type extensionKey struct {
	messageType string
	number      FieldNumber
}

// NewExtensionTable returns an empty table.
func NewExtensionTable() *ExtensionTable {
	return &ExtensionTable{entries: make(map[extensionKey]MessageFactory)}
}

// Register binds a (messageType, number) pair to factory.
func (t *ExtensionTable) Register(messageType string, number FieldNumber, factory MessageFactory) {
	t.entries[extensionKey{messageType, number}] = factory
}

func (t *ExtensionTable) Resolve(messageType string, number FieldNumber) (MessageFactory, bool) {
	f, ok := t.entries[extensionKey{messageType, number}]
	return f, ok
}
