package adv

import "fmt"

// SizeExceededError reports an encode whose serialized size does not
// fit the target buffer. Nothing is written when it is returned.
type SizeExceededError struct {
	Size int
	Cap  int
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("adv: encoded size %d exceeds buffer capacity %d", e.Size, e.Cap)
}

// InsufficientBytesError reports a stream truncated mid-record.
type InsufficientBytesError struct {
	Expected int
	Actual   int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("adv: stream truncated: need %d bytes, have %d", e.Expected, e.Actual)
}

// CannotDecodeError reports a payload the registered record kind
// rejected. Offset is the cursor position just past the record.
type CannotDecodeError struct {
	Type   RecordType
	Offset int
}

func (e *CannotDecodeError) Error() string {
	return fmt.Sprintf("adv: cannot decode record type %s at offset %d", e.Type, e.Offset)
}

// UnknownTypeError reports a type code with no registry entry while the
// decoder is in strict mode.
type UnknownTypeError struct {
	Type RecordType
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("adv: unknown record type %s", e.Type)
}
