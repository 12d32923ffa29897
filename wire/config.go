package wire

import (
	"os"
	"strconv"
)

const defaultMaxNestingDepth = 100

// defaultMaxDepth is the package-level fallback for Decoders constructed
// without an explicit MaxNestingDepth option. It is read once at init time
// from PROTOWIRE_MAX_NESTING_DEPTH, mirroring how the teacher's compat.go
// let a handful of PROTOLITE_* env vars adjust test-harness behavior.
// Decoders snapshot this value at construction; nothing here is consulted
// mid-decode.
var defaultMaxDepth = defaultMaxNestingDepth

func init() {
	if v := os.Getenv("PROTOWIRE_MAX_NESTING_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			defaultMaxDepth = n
		}
	}
}

// EnumPolicy decides whether a closed enum accepts a numeric value read
// from the wire during packed-repeated decode. A nil EnumPolicy (the
// default) accepts every value.
type EnumPolicy func(messageType string, fieldNumber FieldNumber, value int32) bool

type options struct {
	maxNestingDepth int
	discardUnknown  bool
	enumPolicy      EnumPolicy
	extensions      ExtensionResolver
}

func newOptions() *options {
	return &options{maxNestingDepth: defaultMaxDepth}
}

// Option configures a Decoder. Decoders are constructed per-call rather
// than carrying global mutable configuration, so options are applied once
// at NewDecoder time.
type Option func(*options)

// MaxNestingDepth bounds recursive message/group decode depth. Exceeding
// it surfaces as MalformedProtobuf rather than exhausting the call stack.
func MaxNestingDepth(n int) Option {
	return func(o *options) { o.maxNestingDepth = n }
}

// DiscardUnknown drops unknown fields instead of accumulating their raw
// bytes for round-trip preservation.
func DiscardUnknown(discard bool) Option {
	return func(o *options) { o.discardUnknown = discard }
}

// WithEnumPolicy installs a closed-enum validity hook consulted by packed
// enum decode. Without one, every numeric value is accepted.
func WithEnumPolicy(p EnumPolicy) Option {
	return func(o *options) { o.enumPolicy = p }
}

// WithExtensions installs a table consulted when a message handler
// declines a field, before it is preserved as unknown.
func WithExtensions(r ExtensionResolver) Option {
	return func(o *options) { o.extensions = r }
}
