package adv

import "fmt"

// maxRecordPayload is the largest payload a single record can carry:
// the length byte counts the type byte plus payload and caps at 255.
const maxRecordPayload = 254

// Encode serializes records into buf in input order, each framed as
// [length][type][payload] with length counting the type byte plus
// payload. Encoding is atomic: when the total serialized size does not
// fit the buffer's remaining room it fails with SizeExceededError
// before writing any byte. An empty record sequence is legal and
// appends nothing.
func Encode(records []Record, buf Buffer) error {
	staging := NewBufferCap(0, 0)
	offsets := make([]int, len(records)+1)
	for i, r := range records {
		if err := r.AppendPayload(staging); err != nil {
			return fmt.Errorf("adv: encode record type %s: %w", r.Type(), err)
		}
		offsets[i+1] = staging.Len()
		if plen := offsets[i+1] - offsets[i]; plen > maxRecordPayload {
			return fmt.Errorf("adv: record type %s payload is %d bytes, frame limit is %d", r.Type(), plen, maxRecordPayload)
		}
	}

	total := staging.Len() + 2*len(records)
	if max := buf.Cap(); max >= 0 && total > max-buf.Len() {
		return &SizeExceededError{Size: total, Cap: max - buf.Len()}
	}

	raw := staging.Bytes()
	for i, r := range records {
		plen := offsets[i+1] - offsets[i]
		if err := buf.AppendByte(byte(plen + 1)); err != nil {
			return err
		}
		if err := buf.AppendByte(byte(r.Type())); err != nil {
			return err
		}
		if err := buf.Append(raw[offsets[i]:offsets[i+1]]); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAdvertising serializes records into a fresh advertising buffer.
func EncodeAdvertising(records []Record) (*AdvertisingBuffer, error) {
	buf := NewAdvertisingBuffer()
	if err := Encode(records, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeBuffer serializes records into a fresh growable buffer with the
// default ceiling.
func EncodeBuffer(records []Record) (*DataBuffer, error) {
	buf := NewBuffer(0)
	if err := Encode(records, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
