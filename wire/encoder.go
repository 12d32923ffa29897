package wire

import "encoding/binary"

// Encoder is the minimal append-only byte builder used to reconstruct
// unknown-field bytes (the packed-scalar override built by
// LengthDelimitedFieldDecoder.pendingOverride) and by tests that need to hand-build wire payloads.
// It does not know about messages or schemas; general-purpose encoding
// stays out of scope.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded bytes. The returned slice aliases the
// encoder's internal buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset clears the encoder's buffer for reuse.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// AppendTag appends the varint-encoded (fieldNumber, wireFormat) tag.
func (e *Encoder) AppendTag(number FieldNumber, format WireFormat) {
	e.AppendVarint(MakeTag(number, format))
}

// AppendVarint appends v as a base-128 little-endian varint. It grows the
// buffer to VarintSize(v) up front rather than relying on append's own
// growth, since the final size is cheap to know ahead of time.
func (e *Encoder) AppendVarint(v uint64) {
	e.grow(VarintSize(v))
	for v >= 0x80 {
		e.buf = append(e.buf, byte(v)|0x80)
		v >>= 7
	}
	e.buf = append(e.buf, byte(v))
}

// AppendFixed32 appends v as 4 little-endian bytes.
func (e *Encoder) AppendFixed32(v uint32) {
	e.grow(Fixed32Size())
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
}

// AppendFixed64 appends v as 8 little-endian bytes.
func (e *Encoder) AppendFixed64(v uint64) {
	e.grow(Fixed64Size())
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
}

// AppendBytes appends data as a varint length prefix followed by data
// itself.
func (e *Encoder) AppendBytes(data []byte) {
	e.grow(BytesSize(data))
	e.AppendVarint(uint64(len(data)))
	e.buf = append(e.buf, data...)
}

// grow reserves n additional bytes of capacity without changing len(e.buf).
func (e *Encoder) grow(n int) {
	if cap(e.buf)-len(e.buf) >= n {
		return
	}
	buf := make([]byte, len(e.buf), len(e.buf)+n)
	copy(buf, e.buf)
	e.buf = buf
}

// AppendString appends s as a varint length prefix followed by its bytes.
func (e *Encoder) AppendString(s string) {
	e.grow(StringSize(s))
	e.AppendBytes([]byte(s))
}

// AppendRaw appends data with no length prefix, for assembling an
// already-framed sub-payload (e.g. a packed-scalar override body).
func (e *Encoder) AppendRaw(data []byte) {
	e.buf = append(e.buf, data...)
}
