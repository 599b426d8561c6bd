package gap

import (
	"encoding/binary"
	"fmt"
)

// UUID16 is a 16-bit service UUID, little-endian on the wire.
type UUID16 uint16

func (u UUID16) String() string { return fmt.Sprintf("0x%04X", uint16(u)) }

// UUID32 is a 32-bit service UUID, little-endian on the wire.
type UUID32 uint32

func (u UUID32) String() string { return fmt.Sprintf("0x%08X", uint32(u)) }

// UUID128 is a 128-bit service UUID stored in wire order
// (little-endian).
type UUID128 [16]byte

// String renders the UUID in the usual big-endian grouped form.
func (u UUID128) String() string {
	var b [16]byte
	for i := range b {
		b[i] = u[15-i]
	}
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(b[0:4]),
		binary.BigEndian.Uint16(b[4:6]),
		binary.BigEndian.Uint16(b[6:8]),
		binary.BigEndian.Uint16(b[8:10]),
		b[10:16])
}

func parseUUID16s(data []byte) ([]UUID16, bool) {
	if len(data)%2 != 0 {
		return nil, false
	}
	out := make([]UUID16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		out = append(out, UUID16(binary.LittleEndian.Uint16(data[i:i+2])))
	}
	return out, true
}

func parseUUID32s(data []byte) ([]UUID32, bool) {
	if len(data)%4 != 0 {
		return nil, false
	}
	out := make([]UUID32, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		out = append(out, UUID32(binary.LittleEndian.Uint32(data[i:i+4])))
	}
	return out, true
}

func parseUUID128s(data []byte) ([]UUID128, bool) {
	if len(data)%16 != 0 {
		return nil, false
	}
	out := make([]UUID128, 0, len(data)/16)
	for i := 0; i < len(data); i += 16 {
		var u UUID128
		copy(u[:], data[i:i+16])
		out = append(out, u)
	}
	return out, true
}
