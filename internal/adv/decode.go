package adv

// Decoder walks a buffer as a stream of [length][type][payload] records
// and dispatches each one through its registry. A Decoder owns its
// registry: distinct decoders never share state, and concurrent Decode
// calls on distinct decoders are safe. Replacing the registry while a
// Decode on the same decoder is in flight is the caller's race to
// serialize.
type Decoder struct {
	// IgnoreUnknownType skips records whose type code has no registry
	// entry instead of failing the whole decode. It may be flipped
	// between calls; it affects only subsequent ones.
	IgnoreUnknownType bool

	registry map[RecordType]Record
}

// NewDecoder builds a decoder whose registry holds the given prototype
// records, typically gap.DefaultRecords().
func NewDecoder(records ...Record) *Decoder {
	d := &Decoder{}
	d.SetRecords(records)
	return d
}

// SetRecords replaces the decoder's registry. The last prototype wins
// when two share a type code.
func (d *Decoder) SetRecords(records []Record) {
	m := make(map[RecordType]Record, len(records))
	for _, r := range records {
		m[r.Type()] = r
	}
	d.registry = m
}

// Decode walks in from the start and returns the records it carries in
// stream order. Decoding is all-or-nothing: any failure returns a nil
// sequence. A zero length byte at the end of the buffer, or a
// zero-length/zero-type pair anywhere, terminates the walk cleanly;
// the pair is a padding marker kept from early specification revisions
// and anything after it is discarded.
func (d *Decoder) Decode(in Data) ([]Record, error) {
	var out []Record
	n := in.Len()
	i := 0
	for i < n {
		length := int(in.Byte(i))
		i++
		if i == n {
			if length == 0 {
				return out, nil
			}
			return nil, &InsufficientBytesError{Expected: i + 1, Actual: n}
		}
		typ := RecordType(in.Byte(i))
		if length == 0 {
			if typ == 0 {
				return out, nil
			}
			// A stray pad byte: the unconsumed byte starts the next
			// record.
			continue
		}

		var payload Slice
		if plen := length - 1; plen > 0 {
			end := i + 1 + plen
			if end > n {
				return nil, &InsufficientBytesError{Expected: end, Actual: n}
			}
			payload = in.Slice(i+1, end)
			i = end
		} else {
			i++
		}

		proto, ok := d.registry[typ]
		if !ok {
			if d.IgnoreUnknownType {
				continue
			}
			return nil, &UnknownTypeError{Type: typ}
		}
		rec, ok := proto.Decode(payload)
		if !ok {
			return nil, &CannotDecodeError{Type: typ, Offset: i}
		}
		out = append(out, rec)
	}
	return out, nil
}
