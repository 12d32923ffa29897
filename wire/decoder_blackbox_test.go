package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldanekr/protowire/internal/testpb"
	"github.com/haldanekr/protowire/wire"
)

func TestNestedMessageWithUnknownField(t *testing.T) {
	// outer.field1 = {field2 = 42}, outer.field3 = 7 (unknown)
	in := []byte{0x0A, 0x02, 0x10, 0x2A, 0x18, 0x07}
	m := &testpb.Outer{}
	dec := wire.NewDecoder(in)
	require.NoError(t, dec.DecodeFullObject(m))

	require.NotNil(t, m.Field1)
	assert.EqualValues(t, 42, m.Field1.Value)
	assert.Equal(t, []byte{0x18, 0x07}, dec.UnknownFields())
}

func TestGroupDecode(t *testing.T) {
	in := []byte{0x23, 0x08, 0x05, 0x24}
	m := &testpb.Grouped{}
	dec := wire.NewDecoder(in)
	require.NoError(t, dec.DecodeFullObject(m))
	require.NotNil(t, m.Group)
	assert.EqualValues(t, 5, m.Group.Value)
}

func TestMapDecodeOrderIndependent(t *testing.T) {
	keyFirst := []byte{0x0A, 0x07, 0x0A, 0x03, 'f', 'o', 'o', 0x10, 0x2A}
	valueFirst := []byte{0x0A, 0x07, 0x10, 0x2A, 0x0A, 0x03, 'f', 'o', 'o'}

	for _, in := range [][]byte{keyFirst, valueFirst} {
		m := &testpb.StringIntMap{}
		dec := wire.NewDecoder(in)
		require.NoError(t, dec.DecodeFullObject(m))
		assert.Equal(t, map[string]int32{"foo": 42}, m.Entries)
	}
}

func TestMapEntryMissingValueIsMalformed(t *testing.T) {
	// entry with only a key, no value field.
	in := []byte{0x0A, 0x05, 0x0A, 0x03, 'f', 'o', 'o'}
	m := &testpb.StringIntMap{}
	dec := wire.NewDecoder(in)
	err := dec.DecodeFullObject(m)
	assert.ErrorIs(t, err, wire.ErrMalformedProtobuf)
}

func TestExtensionDispatch(t *testing.T) {
	table := wire.NewExtensionTable()
	table.Register("testpb.Extendable", 100, func() wire.MessageHandler {
		return &testpb.PriceExtension{}
	})

	// field 1 (known) = 7, field 100 (extension) = 999
	in := []byte{0x08, 0x07, 0xA0, 0x06, 0xE7, 0x07}
	m := &testpb.Extendable{}
	dec := wire.NewDecoder(in, wire.WithExtensions(table))
	require.NoError(t, dec.DecodeFullObject(m))

	assert.EqualValues(t, 7, m.Known)
	assert.Empty(t, dec.UnknownFields())
}

func TestExtensionDispatchWithoutTableLeavesFieldUnknown(t *testing.T) {
	in := []byte{0x08, 0x07, 0xA0, 0x06, 0xE7, 0x07}
	m := &testpb.Extendable{}
	dec := wire.NewDecoder(in)
	require.NoError(t, dec.DecodeFullObject(m))

	assert.EqualValues(t, 7, m.Known)
	assert.NotEmpty(t, dec.UnknownFields())
}

func TestNestingDepthLimitExceeded(t *testing.T) {
	// ten levels of testpb.Recursive nested inside one another.
	payload := []byte{0x10, 0x01} // field 2 (Leaf) = 1
	for i := 0; i < 10; i++ {
		enc := wire.NewEncoder()
		enc.AppendTag(1, wire.WireBytes)
		enc.AppendBytes(payload)
		payload = enc.Bytes()
	}

	m := &testpb.Recursive{}
	dec := wire.NewDecoder(payload, wire.MaxNestingDepth(3))
	err := dec.DecodeFullObject(m)
	assert.ErrorIs(t, err, wire.ErrMalformedProtobuf)
}

func TestNestingWithinDepthLimitSucceeds(t *testing.T) {
	payload := []byte{0x10, 0x01}
	for i := 0; i < 3; i++ {
		enc := wire.NewEncoder()
		enc.AppendTag(1, wire.WireBytes)
		enc.AppendBytes(payload)
		payload = enc.Bytes()
	}

	m := &testpb.Recursive{}
	dec := wire.NewDecoder(payload, wire.MaxNestingDepth(10))
	require.NoError(t, dec.DecodeFullObject(m))
	leaf := m
	for leaf.Child != nil {
		leaf = leaf.Child
	}
	assert.EqualValues(t, 1, leaf.Leaf)
}

func TestPackedScalarsRoundTrip(t *testing.T) {
	in := []byte{0x08, 0x01, 0x8A, 0x01, 0x03, 0x02, 0x04, 0x06}
	// field1 = 1, field17 packed int32 = [2, 4, 6]
	m := &testpb.Scalars{}
	dec := wire.NewDecoder(in)
	require.NoError(t, dec.DecodeFullObject(m))
	assert.EqualValues(t, 1, m.I32)
	assert.Equal(t, []int32{2, 4, 6}, m.RepI32)
}
