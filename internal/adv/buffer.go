package adv

import (
	"errors"
	"fmt"
)

// AdvertisingBufferCap is the payload limit of a legacy advertising PDU
// [Vol 6, Part B, 2.3.1].
const AdvertisingBufferCap = 31

// DefaultBufferCap bounds the growable buffer kind when the caller does
// not choose a ceiling. It is a practical default, not a protocol limit.
const DefaultBufferCap = 512

// ErrBufferFull is returned by append operations that would exceed the
// buffer's capacity. Buffers never truncate.
var ErrBufferFull = errors.New("adv: buffer full")

// Data is the read surface shared by buffers and slices. The decoder
// accepts any Data, so a slice of a buffer can be decoded without
// copying its bytes.
type Data interface {
	Len() int
	Byte(i int) byte
	Slice(from, to int) Slice
	Bytes() []byte
}

// Buffer is the append surface shared by the two buffer kinds.
type Buffer interface {
	Data
	Cap() int
	AppendByte(b byte) error
	Append(p []byte) error
}

// Slice is a read-only window over a buffer's storage. Slicing never
// copies; callers must not modify the bytes it exposes.
type Slice struct {
	data []byte
}

// NewSlice wraps raw bytes for decoding. The slice keeps a reference to
// the given storage.
func NewSlice(data []byte) Slice {
	return Slice{data: data}
}

// Len returns the number of bytes in the window.
func (s Slice) Len() int { return len(s.data) }

// Byte returns the byte at index i.
func (s Slice) Byte(i int) byte { return s.data[i] }

// Slice returns a sub-window over the same storage.
func (s Slice) Slice(from, to int) Slice {
	return Slice{data: s.data[from:to]}
}

// Bytes exposes the underlying storage without copying.
func (s Slice) Bytes() []byte { return s.data }

// DataBuffer is the growable buffer kind. Its ceiling is chosen by the
// caller and defaults to DefaultBufferCap.
type DataBuffer struct {
	data []byte
	max  int
}

var _ Buffer = (*DataBuffer)(nil)

// NewBuffer returns an empty growable buffer with the given capacity
// hint and the default ceiling.
func NewBuffer(hint int) *DataBuffer {
	return NewBufferCap(hint, DefaultBufferCap)
}

// NewBufferCap returns an empty growable buffer with the given capacity
// hint and ceiling. A ceiling <= 0 means unbounded.
func NewBufferCap(hint, max int) *DataBuffer {
	if hint < 0 {
		hint = 0
	}
	if max > 0 && hint > max {
		hint = max
	}
	return &DataBuffer{data: make([]byte, 0, hint), max: max}
}

// Len returns the number of bytes appended so far.
func (b *DataBuffer) Len() int { return len(b.data) }

// Cap returns the buffer's ceiling, or -1 when unbounded.
func (b *DataBuffer) Cap() int {
	if b.max <= 0 {
		return -1
	}
	return b.max
}

// Byte returns the byte at index i.
func (b *DataBuffer) Byte(i int) byte { return b.data[i] }

// Slice returns a read-only window over the buffer's storage.
func (b *DataBuffer) Slice(from, to int) Slice {
	return Slice{data: b.data[from:to]}
}

// Bytes exposes the underlying storage without copying.
func (b *DataBuffer) Bytes() []byte { return b.data }

// AppendByte appends a single byte.
func (b *DataBuffer) AppendByte(c byte) error {
	if b.max > 0 && len(b.data)+1 > b.max {
		return fmt.Errorf("%w: %d + 1 exceeds %d", ErrBufferFull, len(b.data), b.max)
	}
	b.data = append(b.data, c)
	return nil
}

// Append appends a byte sequence.
func (b *DataBuffer) Append(p []byte) error {
	if b.max > 0 && len(b.data)+len(p) > b.max {
		return fmt.Errorf("%w: %d + %d exceeds %d", ErrBufferFull, len(b.data), len(p), b.max)
	}
	b.data = append(b.data, p...)
	return nil
}

// AdvertisingBuffer is the fixed buffer kind, bounded by the legacy
// advertising PDU payload limit.
type AdvertisingBuffer struct {
	data []byte
}

var _ Buffer = (*AdvertisingBuffer)(nil)

// NewAdvertisingBuffer returns an empty advertising buffer.
func NewAdvertisingBuffer() *AdvertisingBuffer {
	return &AdvertisingBuffer{data: make([]byte, 0, AdvertisingBufferCap)}
}

// Len returns the number of bytes appended so far.
func (b *AdvertisingBuffer) Len() int { return len(b.data) }

// Cap returns AdvertisingBufferCap.
func (b *AdvertisingBuffer) Cap() int { return AdvertisingBufferCap }

// Byte returns the byte at index i.
func (b *AdvertisingBuffer) Byte(i int) byte { return b.data[i] }

// Slice returns a read-only window over the buffer's storage.
func (b *AdvertisingBuffer) Slice(from, to int) Slice {
	return Slice{data: b.data[from:to]}
}

// Bytes exposes the underlying storage without copying.
func (b *AdvertisingBuffer) Bytes() []byte { return b.data }

// AppendByte appends a single byte.
func (b *AdvertisingBuffer) AppendByte(c byte) error {
	if len(b.data)+1 > AdvertisingBufferCap {
		return fmt.Errorf("%w: %d + 1 exceeds %d", ErrBufferFull, len(b.data), AdvertisingBufferCap)
	}
	b.data = append(b.data, c)
	return nil
}

// Append appends a byte sequence.
func (b *AdvertisingBuffer) Append(p []byte) error {
	if len(b.data)+len(p) > AdvertisingBufferCap {
		return fmt.Errorf("%w: %d + %d exceeds %d", ErrBufferFull, len(b.data), len(p), AdvertisingBufferCap)
	}
	b.data = append(b.data, p...)
	return nil
}
