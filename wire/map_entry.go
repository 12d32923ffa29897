package wire

// decodeMapEntry parses data as a two-field map entry message: field 1 is
// the key, field 2 is the value, any other field number is ignored. Key
// and value may appear in either order; both must be present.
func decodeMapEntry(data []byte, codec MapEntryCodec, opts *options, depth int) error {
	if depth+1 > opts.maxNestingDepth {
		return malformed(0, "nesting depth exceeds limit %d", opts.maxNestingDepth)
	}

	s := NewScanner(data)
	dec := &Decoder{scanner: s, opts: opts, depth: depth + 1}
	var haveKey, haveValue bool

	for {
		tag, ok, err := s.GetTag()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fd, err := dec.newFieldDecoder(tag)
		if err != nil {
			return err
		}

		switch tag.Number {
		case 1:
			consumed, err := codec.DecodeKey(fd)
			if err != nil {
				return err
			}
			if consumed {
				haveKey = true
			} else if _, err := s.getRawField(); err != nil {
				return err
			}
		case 2:
			consumed, err := codec.DecodeValue(fd)
			if err != nil {
				return err
			}
			if consumed {
				haveValue = true
			} else if _, err := s.getRawField(); err != nil {
				return err
			}
		default:
			if !fd.Consumed() {
				if _, err := s.getRawField(); err != nil {
					return err
				}
			}
		}
	}

	if !haveKey || !haveValue {
		return malformed(0, "map entry missing key or value")
	}
	return codec.Insert()
}
