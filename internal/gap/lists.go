package gap

import "github.com/daveverwer/Bluetooth/internal/adv"

// ServiceUUIDs16 lists 16-bit service UUIDs. The same structure serves
// the incomplete (0x02) and complete (0x03) list types; the prototype's
// Incomplete field selects which one.
type ServiceUUIDs16 struct {
	UUIDs      []UUID16
	Incomplete bool
}

// Type implements adv.Record.
func (l ServiceUUIDs16) Type() adv.RecordType {
	if l.Incomplete {
		return TypeIncompleteUUID16List
	}
	return TypeCompleteUUID16List
}

// Decode implements adv.Record.
func (l ServiceUUIDs16) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID16s(p.Bytes())
	if !ok {
		return nil, false
	}
	return ServiceUUIDs16{UUIDs: uuids, Incomplete: l.Incomplete}, true
}

// AppendPayload implements adv.Record.
func (l ServiceUUIDs16) AppendPayload(buf adv.Buffer) error {
	for _, u := range l.UUIDs {
		if err := buf.Append([]byte{byte(u), byte(u >> 8)}); err != nil {
			return err
		}
	}
	return nil
}

// ServiceUUIDs32 lists 32-bit service UUIDs (0x04 incomplete, 0x05
// complete).
type ServiceUUIDs32 struct {
	UUIDs      []UUID32
	Incomplete bool
}

// Type implements adv.Record.
func (l ServiceUUIDs32) Type() adv.RecordType {
	if l.Incomplete {
		return TypeIncompleteUUID32List
	}
	return TypeCompleteUUID32List
}

// Decode implements adv.Record.
func (l ServiceUUIDs32) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID32s(p.Bytes())
	if !ok {
		return nil, false
	}
	return ServiceUUIDs32{UUIDs: uuids, Incomplete: l.Incomplete}, true
}

// AppendPayload implements adv.Record.
func (l ServiceUUIDs32) AppendPayload(buf adv.Buffer) error {
	for _, u := range l.UUIDs {
		if err := buf.Append([]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}); err != nil {
			return err
		}
	}
	return nil
}

// ServiceUUIDs128 lists 128-bit service UUIDs (0x06 incomplete, 0x07
// complete).
type ServiceUUIDs128 struct {
	UUIDs      []UUID128
	Incomplete bool
}

// Type implements adv.Record.
func (l ServiceUUIDs128) Type() adv.RecordType {
	if l.Incomplete {
		return TypeIncompleteUUID128List
	}
	return TypeCompleteUUID128List
}

// Decode implements adv.Record.
func (l ServiceUUIDs128) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID128s(p.Bytes())
	if !ok {
		return nil, false
	}
	return ServiceUUIDs128{UUIDs: uuids, Incomplete: l.Incomplete}, true
}

// AppendPayload implements adv.Record.
func (l ServiceUUIDs128) AppendPayload(buf adv.Buffer) error {
	for _, u := range l.UUIDs {
		if err := buf.Append(u[:]); err != nil {
			return err
		}
	}
	return nil
}

// SolicitedUUIDs16 is the 16-bit service solicitation list (0x14).
type SolicitedUUIDs16 struct {
	UUIDs []UUID16
}

// Type implements adv.Record.
func (SolicitedUUIDs16) Type() adv.RecordType { return TypeSolicitedUUID16List }

// Decode implements adv.Record.
func (SolicitedUUIDs16) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID16s(p.Bytes())
	if !ok {
		return nil, false
	}
	return SolicitedUUIDs16{UUIDs: uuids}, true
}

// AppendPayload implements adv.Record.
func (l SolicitedUUIDs16) AppendPayload(buf adv.Buffer) error {
	return ServiceUUIDs16{UUIDs: l.UUIDs}.AppendPayload(buf)
}

// SolicitedUUIDs32 is the 32-bit service solicitation list (0x1F).
type SolicitedUUIDs32 struct {
	UUIDs []UUID32
}

// Type implements adv.Record.
func (SolicitedUUIDs32) Type() adv.RecordType { return TypeSolicitedUUID32List }

// Decode implements adv.Record.
func (SolicitedUUIDs32) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID32s(p.Bytes())
	if !ok {
		return nil, false
	}
	return SolicitedUUIDs32{UUIDs: uuids}, true
}

// AppendPayload implements adv.Record.
func (l SolicitedUUIDs32) AppendPayload(buf adv.Buffer) error {
	return ServiceUUIDs32{UUIDs: l.UUIDs}.AppendPayload(buf)
}

// SolicitedUUIDs128 is the 128-bit service solicitation list (0x15).
type SolicitedUUIDs128 struct {
	UUIDs []UUID128
}

// Type implements adv.Record.
func (SolicitedUUIDs128) Type() adv.RecordType { return TypeSolicitedUUID128List }

// Decode implements adv.Record.
func (SolicitedUUIDs128) Decode(p adv.Slice) (adv.Record, bool) {
	uuids, ok := parseUUID128s(p.Bytes())
	if !ok {
		return nil, false
	}
	return SolicitedUUIDs128{UUIDs: uuids}, true
}

// AppendPayload implements adv.Record.
func (l SolicitedUUIDs128) AppendPayload(buf adv.Buffer) error {
	return ServiceUUIDs128{UUIDs: l.UUIDs}.AppendPayload(buf)
}
