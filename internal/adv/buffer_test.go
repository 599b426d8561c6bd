package adv

import (
	"errors"
	"testing"
)

func TestAdvertisingBufferFull(t *testing.T) {
	buf := NewAdvertisingBuffer()
	if err := buf.Append(make([]byte, AdvertisingBufferCap)); err != nil {
		t.Fatalf("Append to capacity: %v", err)
	}
	if err := buf.AppendByte(0x00); !errors.Is(err, ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	if buf.Len() != AdvertisingBufferCap {
		t.Fatalf("buffer grew past capacity: %d", buf.Len())
	}
}

func TestDataBufferCeiling(t *testing.T) {
	buf := NewBufferCap(2, 4)
	if err := buf.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := buf.Append([]byte{5}); !errors.Is(err, ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	if buf.Cap() != 4 {
		t.Fatalf("unexpected cap %d", buf.Cap())
	}
}

func TestDataBufferUnbounded(t *testing.T) {
	buf := NewBufferCap(0, 0)
	if err := buf.Append(make([]byte, DefaultBufferCap*2)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if buf.Cap() != -1 {
		t.Fatalf("unbounded buffer reports cap %d", buf.Cap())
	}
}

func TestSliceIsZeroCopy(t *testing.T) {
	buf := NewBuffer(8)
	if err := buf.Append([]byte{10, 20, 30, 40}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	s := buf.Slice(1, 3)
	if s.Len() != 2 || s.Byte(0) != 20 || s.Byte(1) != 30 {
		t.Fatalf("unexpected slice contents: %v", s.Bytes())
	}
	// The window aliases the buffer's storage.
	if &s.Bytes()[0] != &buf.Bytes()[1] {
		t.Fatal("slice copied its bytes")
	}
	sub := s.Slice(1, 2)
	if sub.Len() != 1 || sub.Byte(0) != 30 {
		t.Fatalf("unexpected sub-slice contents: %v", sub.Bytes())
	}
}
