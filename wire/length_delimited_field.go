package wire

// LengthDelimitedFieldDecoder is the FieldDecoder variant bound to a
// field whose wire format is LengthDelimited: strings, bytes, embedded
// messages, packed repeated scalars, and map entries all share this one
// framing.
type LengthDelimitedFieldDecoder struct {
	unsupportedSetters
	data     []byte
	number   FieldNumber
	opts     *options
	depth    int
	consumed bool
	override []byte // set when a packed decode rejected some elements
}

func newLengthDelimitedFieldDecoder(data []byte, number FieldNumber, opts *options, depth int) *LengthDelimitedFieldDecoder {
	return &LengthDelimitedFieldDecoder{data: data, number: number, opts: opts, depth: depth}
}

func (d *LengthDelimitedFieldDecoder) Consumed() bool { return d.consumed }

// pendingOverride returns and clears any packed-scalar override bytes
// produced by a rejected element, re-framed as a standalone field so it
// can be appended to the decoder's unknown-bytes accumulator regardless
// of whether the field as a whole was consumed.
func (d *LengthDelimitedFieldDecoder) pendingOverride() []byte {
	if d.override == nil {
		return nil
	}
	enc := NewEncoder()
	enc.AppendTag(d.number, WireBytes)
	enc.AppendBytes(d.override)
	d.override = nil
	return enc.Bytes()
}

// DecodeSingular handles string and bytes fields. Any other scalar kind
// delivered through a LengthDelimited field is a schema mismatch (the
// wire format for a true singular scalar is always Varint/Fixed32/
// Fixed64) and is left for unknown-field preservation.
func (d *LengthDelimitedFieldDecoder) DecodeSingular(kind ScalarKind, dst any) (bool, error) {
	switch kind {
	case KindString:
		p, ok := dst.(*string)
		if !ok {
			return false, nil
		}
		*p = string(d.data)
	case KindBytes:
		p, ok := dst.(*[]byte)
		if !ok {
			return false, nil
		}
		buf := make([]byte, len(d.data))
		copy(buf, d.data)
		*p = buf
	default:
		return false, nil
	}
	d.consumed = true
	return true, nil
}

// DecodeRepeated appends one string/bytes element read from this single
// occurrence (the unpacked form of a repeated scalar field).
func (d *LengthDelimitedFieldDecoder) DecodeRepeated(kind ScalarKind, dst any) (bool, error) {
	switch kind {
	case KindString:
		p, ok := dst.(*[]string)
		if !ok {
			return false, nil
		}
		*p = append(*p, string(d.data))
	case KindBytes:
		p, ok := dst.(*[][]byte)
		if !ok {
			return false, nil
		}
		buf := make([]byte, len(d.data))
		copy(buf, d.data)
		*p = append(*p, buf)
	default:
		return d.decodePacked(kind, dst)
	}
	d.consumed = true
	return true, nil
}

// DecodePacked iterates the sub-slice decoding one scalar per iteration.
// A value the enum policy rejects is captured into an override instead of
// the typed destination, and the field as a whole still reports consumed.
func (d *LengthDelimitedFieldDecoder) DecodePacked(kind ScalarKind, dst any) (bool, error) {
	return d.decodePacked(kind, dst)
}

func (d *LengthDelimitedFieldDecoder) decodePacked(kind ScalarKind, dst any) (bool, error) {
	s := NewScanner(d.data)
	var rejected *Encoder

	switch {
	case isVarintKind(kind):
		for s.remaining() > 0 {
			raw, ok, err := s.getRawVarint()
			if err != nil {
				return false, err
			}
			if !ok {
				break
			}
			if kind == KindEnum && d.opts != nil && d.opts.enumPolicy != nil &&
				!d.opts.enumPolicy("", d.number, int32(raw)) {
				if rejected == nil {
					rejected = NewEncoder()
				}
				rejected.AppendVarint(raw)
				continue
			}
			if err := appendVarint(kind, raw, dst); err != nil {
				return false, err
			}
		}
	case isFixed32Kind(kind):
		for s.remaining() > 0 {
			raw, err := s.readFixed32()
			if err != nil {
				return false, err
			}
			if err := appendFixed32(kind, raw, dst); err != nil {
				return false, err
			}
		}
	case isFixed64Kind(kind):
		for s.remaining() > 0 {
			raw, err := s.readFixed64()
			if err != nil {
				return false, err
			}
			if err := appendFixed64(kind, raw, dst); err != nil {
				return false, err
			}
		}
	default:
		return false, nil
	}

	if rejected != nil {
		d.override = rejected.Bytes()
	}
	d.consumed = true
	return true, nil
}

func (d *LengthDelimitedFieldDecoder) DecodeSingularMessage(factory MessageFactory, set func(MessageHandler)) (bool, error) {
	msg := factory()
	if err := decodeEmbedded(d.data, msg, d.opts, d.depth); err != nil {
		return false, wrapField(err, d.number)
	}
	set(msg)
	d.consumed = true
	return true, nil
}

func (d *LengthDelimitedFieldDecoder) DecodeRepeatedMessage(factory MessageFactory, collect func(MessageHandler)) (bool, error) {
	msg := factory()
	if err := decodeEmbedded(d.data, msg, d.opts, d.depth); err != nil {
		return false, wrapField(err, d.number)
	}
	collect(msg)
	d.consumed = true
	return true, nil
}

func (d *LengthDelimitedFieldDecoder) DecodeMap(codec MapEntryCodec) (bool, error) {
	if err := decodeMapEntry(d.data, codec, d.opts, d.depth); err != nil {
		return false, wrapField(err, d.number)
	}
	d.consumed = true
	return true, nil
}

func decodeEmbedded(data []byte, handler MessageHandler, opts *options, depth int) error {
	if depth+1 > opts.maxNestingDepth {
		return malformed(0, "nesting depth exceeds limit %d", opts.maxNestingDepth)
	}
	dec := &Decoder{scanner: NewScanner(data), opts: opts, depth: depth + 1}
	return dec.DecodeFullObject(handler)
}
