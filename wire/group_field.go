package wire

// GroupFieldDecoder is the FieldDecoder variant bound to a legacy
// proto2 group: a StartGroup tag whose matching EndGroup carries the same
// field number. It shares the parent's Scanner rather than a sub-slice,
// since group framing is interleaved with the enclosing message's own
// tags instead of length-delimited.
type GroupFieldDecoder struct {
	unsupportedSetters
	scanner  *Scanner
	number   FieldNumber
	opts     *options
	depth    int
	consumed bool
}

func newGroupFieldDecoder(s *Scanner, number FieldNumber, opts *options, depth int) *GroupFieldDecoder {
	return &GroupFieldDecoder{scanner: s, number: number, opts: opts, depth: depth}
}

func (d *GroupFieldDecoder) Consumed() bool { return d.consumed }

func (d *GroupFieldDecoder) DecodeSingularGroup(factory MessageFactory, set func(MessageHandler)) (bool, error) {
	msg, err := d.decode(factory)
	if err != nil {
		return false, err
	}
	set(msg)
	d.consumed = true
	return true, nil
}

func (d *GroupFieldDecoder) DecodeRepeatedGroup(factory MessageFactory, collect func(MessageHandler)) (bool, error) {
	msg, err := d.decode(factory)
	if err != nil {
		return false, err
	}
	collect(msg)
	d.consumed = true
	return true, nil
}

func (d *GroupFieldDecoder) decode(factory MessageFactory) (MessageHandler, error) {
	if d.depth+1 > d.opts.maxNestingDepth {
		return nil, malformed(d.scanner.pos, "nesting depth exceeds limit %d", d.opts.maxNestingDepth)
	}
	msg := factory()
	dec := &Decoder{scanner: d.scanner, opts: d.opts, depth: d.depth + 1}
	if err := dec.decodeFullGroup(d.number, msg); err != nil {
		return nil, wrapField(err, d.number)
	}
	return msg, nil
}
