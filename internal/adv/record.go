package adv

import "fmt"

// RecordType is the one-byte assigned number identifying a GAP data
// type. Values without an assigned meaning are legal on the wire but
// absent from any registry.
type RecordType byte

// String renders the code in the usual assigned-numbers notation,
// with the assigned name when the code has one.
func (t RecordType) String() string {
	if name, ok := typeNames[t]; ok {
		return fmt.Sprintf("0x%02X (%s)", byte(t), name)
	}
	return fmt.Sprintf("0x%02X", byte(t))
}

// Record is implemented by every GAP advertising data structure. A zero
// value of a concrete record acts as the decode factory for its type
// code: the decoder looks the prototype up by Type and calls Decode on
// it with the payload window.
type Record interface {
	// Type returns the assigned type code for this record kind.
	Type() RecordType

	// Decode parses payload into a new record of the same kind. It
	// reports false when the payload is structurally invalid for this
	// kind (wrong fixed length, bad enumerant). The payload never
	// includes the length or type byte.
	Decode(payload Slice) (Record, bool)

	// AppendPayload appends the record's payload bytes, without the
	// length or type byte, to buf.
	AppendPayload(buf Buffer) error
}
