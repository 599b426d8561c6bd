package gap

import (
	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/bits"
)

// Flag bits of the Flags data type [Supplement, Part A, 1.3].
const (
	FlagLELimitedDiscoverable  = 0x01
	FlagLEGeneralDiscoverable  = 0x02
	FlagBREDRNotSupported      = 0x04
	FlagSimultaneousController = 0x08
	FlagSimultaneousHost       = 0x10
)

var flagNames = []bits.Flag{
	{Mask: FlagLELimitedDiscoverable, Name: "le_limited_discoverable"},
	{Mask: FlagLEGeneralDiscoverable, Name: "le_general_discoverable"},
	{Mask: FlagBREDRNotSupported, Name: "br_edr_not_supported"},
	{Mask: FlagSimultaneousController, Name: "simultaneous_le_bredr_controller"},
	{Mask: FlagSimultaneousHost, Name: "simultaneous_le_bredr_host"},
}

// Flags is the Flags data type (0x01).
type Flags struct {
	Flags byte
}

// Type implements adv.Record.
func (Flags) Type() adv.RecordType { return TypeFlags }

// Decode implements adv.Record.
func (Flags) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 1 {
		return nil, false
	}
	// The supplement allows additional octets; they are reserved and
	// carry no defined flags, so only the first octet is kept.
	return Flags{Flags: p.Byte(0)}, true
}

// AppendPayload implements adv.Record.
func (f Flags) AppendPayload(buf adv.Buffer) error {
	return buf.AppendByte(f.Flags)
}

// Names returns the names of the set flag bits.
func (f Flags) Names() []string {
	return bits.OptionSet{Value: uint64(f.Flags), Flags: flagNames}.Names()
}
