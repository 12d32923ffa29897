package wire

// Decoder is the top-level driver: it iterates tags from a Scanner,
// constructs the FieldDecoder appropriate to each tag's wire format,
// delivers it to the message handler, and accumulates the raw bytes of
// any field the handler and extension table both decline.
type Decoder struct {
	scanner *Scanner
	opts    *options
	depth   int
	unknown []byte
}

// NewDecoder constructs a Decoder over buf. The input must remain valid
// and unmodified for the Decoder's entire lifetime; no copy is made.
func NewDecoder(buf []byte, opts ...Option) *Decoder {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Decoder{scanner: NewScanner(buf), opts: o}
}

// UnknownFields returns the accumulated raw bytes of every field the
// handler did not claim, in wire order.
func (d *Decoder) UnknownFields() []byte { return d.unknown }

// DecodeFullObject decodes every top-level field in the Decoder's input,
// delivering each to handler.DecodeField. It fails TrailingGarbage only in
// the circumstance described in the package's error model: an embedded
// sub-decode that didn't fully consume its bound sub-slice.
func (d *Decoder) DecodeFullObject(handler MessageHandler) error {
	for {
		tag, ok, err := d.scanner.GetTag()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := d.dispatch(tag, handler); err != nil {
			return err
		}
	}
	if d.scanner.remaining() != 0 {
		return &TrailingGarbageError{Offset: d.scanner.pos, Remaining: d.scanner.remaining()}
	}
	return nil
}

// decodeFullGroup decodes fields belonging to a legacy group until it
// observes EndGroup with a matching field number. Precondition: the
// scanner's lastFormat is StartGroup (the caller just read that tag).
func (d *Decoder) decodeFullGroup(number FieldNumber, handler MessageHandler) error {
	for {
		tag, ok, err := d.scanner.GetTag()
		if err != nil {
			return err
		}
		if !ok {
			return truncated(d.scanner.pos, "end of input inside group %d", number)
		}
		if tag.Number == number {
			if tag.Format == WireEndGroup {
				return nil
			}
			return malformed(d.scanner.fieldStart, "field number %d reused with mismatched wire format inside group", number)
		}
		if err := d.dispatch(tag, handler); err != nil {
			return err
		}
	}
}

// dispatch builds the FieldDecoder for tag, offers it to the handler,
// then to extensions if the handler declined, then preserves it as
// unknown if nothing claimed it.
func (d *Decoder) dispatch(tag FieldTag, handler MessageHandler) error {
	fd, err := d.newFieldDecoder(tag)
	if err != nil {
		return err
	}

	// Message, group and map setters already prefix tag.Number onto the
	// errors of their nested decode; only bare errors are wrapped here.
	wrap := func(err error) error {
		if _, ok := err.(*FieldError); ok {
			return err
		}
		return wrapField(err, tag.Number)
	}

	if err := handler.DecodeField(fd, tag.Number); err != nil {
		return wrap(err)
	}

	if !fd.Consumed() {
		if d.opts.extensions != nil {
			if ext, ok, err := d.resolveExtension(handler, tag.Number); err != nil {
				return err
			} else if ok {
				if err := ext.DecodeField(fd, tag.Number); err != nil {
					return wrap(err)
				}
			}
		}
	}

	if lfd, ok := fd.(*LengthDelimitedFieldDecoder); ok {
		if override := lfd.pendingOverride(); override != nil && !d.opts.discardUnknown {
			d.unknown = append(d.unknown, override...)
		}
	}

	if !fd.Consumed() {
		if d.opts.discardUnknown {
			return d.scanner.skip()
		}
		raw, err := d.scanner.getRawField()
		if err != nil {
			return err
		}
		d.unknown = append(d.unknown, raw...)
	}
	return nil
}

func (d *Decoder) resolveExtension(handler MessageHandler, number FieldNumber) (MessageHandler, bool, error) {
	ext, ok := handler.(ExtendableMessage)
	if !ok {
		return nil, false, nil
	}
	factory, ok := d.opts.extensions.Resolve(ext.MessageTypeName(), number)
	if !ok || factory == nil {
		return nil, false, nil
	}
	return factory(), true, nil
}

// newFieldDecoder constructs the FieldDecoder variant for tag, advancing
// the scanner past a LengthDelimited field's payload (binding it to a
// sub-slice) but leaving Varint/Fixed/StartGroup fields for their setter
// or skip() to consume lazily.
func (d *Decoder) newFieldDecoder(tag FieldTag) (FieldDecoder, error) {
	switch tag.Format {
	case WireVarint, WireFixed32, WireFixed64:
		return newNumericFieldDecoder(d.scanner, tag.Format), nil
	case WireBytes:
		n, ok, err := d.scanner.getRawVarint()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, truncated(d.scanner.pos, "end of input reading length prefix")
		}
		if n > uint64(d.scanner.remaining()) {
			return nil, malformed(d.scanner.pos, "length %d exceeds remaining %d bytes", n, d.scanner.remaining())
		}
		start := d.scanner.pos
		d.scanner.pos += int(n)
		d.scanner.fieldEnd = d.scanner.pos
		return newLengthDelimitedFieldDecoder(d.scanner.buf[start:d.scanner.pos], tag.Number, d.opts, d.depth), nil
	case WireStartGroup:
		return newGroupFieldDecoder(d.scanner, tag.Number, d.opts, d.depth), nil
	case WireEndGroup:
		return nil, malformed(d.scanner.fieldStart, "end group without matching start group")
	default:
		return nil, malformed(d.scanner.fieldStart, "undefined wire format %d", uint8(tag.Format))
	}
}
