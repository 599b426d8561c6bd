package gap

import (
	"encoding/binary"
	"fmt"

	"github.com/daveverwer/Bluetooth/internal/adv"
)

// BDAddr is a device address in wire order (least significant byte
// first).
type BDAddr [6]byte

// String renders the address most significant byte first.
func (a BDAddr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[5], a[4], a[3], a[2], a[1], a[0])
}

// LocalName is the device name. The same structure serves the shortened
// (0x08) and complete (0x09) name types; the prototype's Short field
// selects which one.
type LocalName struct {
	Name  string
	Short bool
}

// Type implements adv.Record.
func (n LocalName) Type() adv.RecordType {
	if n.Short {
		return TypeShortenedLocalName
	}
	return TypeCompleteLocalName
}

// Decode implements adv.Record.
func (n LocalName) Decode(p adv.Slice) (adv.Record, bool) {
	return LocalName{Name: string(p.Bytes()), Short: n.Short}, true
}

// AppendPayload implements adv.Record.
func (n LocalName) AppendPayload(buf adv.Buffer) error {
	return buf.Append([]byte(n.Name))
}

// TxPowerLevel is the radiated power level in dBm (0x0A).
type TxPowerLevel struct {
	Level int8
}

// Type implements adv.Record.
func (TxPowerLevel) Type() adv.RecordType { return TypeTxPowerLevel }

// Decode implements adv.Record.
func (TxPowerLevel) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 1 {
		return nil, false
	}
	return TxPowerLevel{Level: int8(p.Byte(0))}, true
}

// AppendPayload implements adv.Record.
func (t TxPowerLevel) AppendPayload(buf adv.Buffer) error {
	return buf.AppendByte(byte(t.Level))
}

// ManufacturerData is manufacturer specific data (0xFF): a 16-bit
// company identifier followed by opaque vendor bytes.
type ManufacturerData struct {
	CompanyID uint16
	Data      []byte
}

// Type implements adv.Record.
func (ManufacturerData) Type() adv.RecordType { return TypeManufacturerData }

// Decode implements adv.Record.
func (ManufacturerData) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 2 {
		return nil, false
	}
	raw := p.Bytes()
	return ManufacturerData{
		CompanyID: binary.LittleEndian.Uint16(raw[0:2]),
		Data:      raw[2:],
	}, true
}

// AppendPayload implements adv.Record.
func (m ManufacturerData) AppendPayload(buf adv.Buffer) error {
	if err := buf.Append([]byte{byte(m.CompanyID), byte(m.CompanyID >> 8)}); err != nil {
		return err
	}
	return buf.Append(m.Data)
}

// ServiceData16 is service data keyed by a 16-bit UUID (0x16).
type ServiceData16 struct {
	UUID UUID16
	Data []byte
}

// Type implements adv.Record.
func (ServiceData16) Type() adv.RecordType { return TypeServiceData16 }

// Decode implements adv.Record.
func (ServiceData16) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 2 {
		return nil, false
	}
	raw := p.Bytes()
	return ServiceData16{
		UUID: UUID16(binary.LittleEndian.Uint16(raw[0:2])),
		Data: raw[2:],
	}, true
}

// AppendPayload implements adv.Record.
func (s ServiceData16) AppendPayload(buf adv.Buffer) error {
	if err := buf.Append([]byte{byte(s.UUID), byte(s.UUID >> 8)}); err != nil {
		return err
	}
	return buf.Append(s.Data)
}

// ServiceData32 is service data keyed by a 32-bit UUID (0x20).
type ServiceData32 struct {
	UUID UUID32
	Data []byte
}

// Type implements adv.Record.
func (ServiceData32) Type() adv.RecordType { return TypeServiceData32 }

// Decode implements adv.Record.
func (ServiceData32) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 4 {
		return nil, false
	}
	raw := p.Bytes()
	return ServiceData32{
		UUID: UUID32(binary.LittleEndian.Uint32(raw[0:4])),
		Data: raw[4:],
	}, true
}

// AppendPayload implements adv.Record.
func (s ServiceData32) AppendPayload(buf adv.Buffer) error {
	u := s.UUID
	if err := buf.Append([]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}); err != nil {
		return err
	}
	return buf.Append(s.Data)
}

// ServiceData128 is service data keyed by a 128-bit UUID (0x21).
type ServiceData128 struct {
	UUID UUID128
	Data []byte
}

// Type implements adv.Record.
func (ServiceData128) Type() adv.RecordType { return TypeServiceData128 }

// Decode implements adv.Record.
func (ServiceData128) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 16 {
		return nil, false
	}
	raw := p.Bytes()
	var u UUID128
	copy(u[:], raw[0:16])
	return ServiceData128{UUID: u, Data: raw[16:]}, true
}

// AppendPayload implements adv.Record.
func (s ServiceData128) AppendPayload(buf adv.Buffer) error {
	if err := buf.Append(s.UUID[:]); err != nil {
		return err
	}
	return buf.Append(s.Data)
}

// Appearance is the external appearance category (0x19).
type Appearance struct {
	Category uint16
}

// Type implements adv.Record.
func (Appearance) Type() adv.RecordType { return TypeAppearance }

// Decode implements adv.Record.
func (Appearance) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 2 {
		return nil, false
	}
	return Appearance{Category: binary.LittleEndian.Uint16(p.Bytes())}, true
}

// AppendPayload implements adv.Record.
func (a Appearance) AppendPayload(buf adv.Buffer) error {
	return buf.Append([]byte{byte(a.Category), byte(a.Category >> 8)})
}

// Connection interval bounds in 1.25 ms units [Supplement, Part A,
// 1.9]. 0xFFFF leaves a bound unspecified.
const (
	connIntervalMin         = 0x0006
	connIntervalMax         = 0x0C80
	connIntervalUnspecified = 0xFFFF
)

// ConnectionIntervalRange is the peripheral connection interval range
// (0x12).
type ConnectionIntervalRange struct {
	Min uint16
	Max uint16
}

// Type implements adv.Record.
func (ConnectionIntervalRange) Type() adv.RecordType { return TypeConnectionIntervalRange }

// Decode implements adv.Record.
func (ConnectionIntervalRange) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 4 {
		return nil, false
	}
	raw := p.Bytes()
	r := ConnectionIntervalRange{
		Min: binary.LittleEndian.Uint16(raw[0:2]),
		Max: binary.LittleEndian.Uint16(raw[2:4]),
	}
	if !connIntervalValid(r.Min) || !connIntervalValid(r.Max) {
		return nil, false
	}
	if r.Min != connIntervalUnspecified && r.Max != connIntervalUnspecified && r.Min > r.Max {
		return nil, false
	}
	return r, true
}

// AppendPayload implements adv.Record.
func (r ConnectionIntervalRange) AppendPayload(buf adv.Buffer) error {
	return buf.Append([]byte{byte(r.Min), byte(r.Min >> 8), byte(r.Max), byte(r.Max >> 8)})
}

func connIntervalValid(v uint16) bool {
	return v == connIntervalUnspecified || (v >= connIntervalMin && v <= connIntervalMax)
}

// TargetAddress lists device addresses the advertisement is aimed at.
// The same structure serves the public (0x17) and random (0x18) target
// address types; the prototype's Random field selects which one.
type TargetAddress struct {
	Addresses []BDAddr
	Random    bool
}

// Type implements adv.Record.
func (t TargetAddress) Type() adv.RecordType {
	if t.Random {
		return TypeRandomTargetAddress
	}
	return TypePublicTargetAddress
}

// Decode implements adv.Record.
func (t TargetAddress) Decode(p adv.Slice) (adv.Record, bool) {
	raw := p.Bytes()
	if len(raw) == 0 || len(raw)%6 != 0 {
		return nil, false
	}
	out := TargetAddress{Random: t.Random, Addresses: make([]BDAddr, 0, len(raw)/6)}
	for i := 0; i < len(raw); i += 6 {
		var a BDAddr
		copy(a[:], raw[i:i+6])
		out.Addresses = append(out.Addresses, a)
	}
	return out, true
}

// AppendPayload implements adv.Record.
func (t TargetAddress) AppendPayload(buf adv.Buffer) error {
	for _, a := range t.Addresses {
		if err := buf.Append(a[:]); err != nil {
			return err
		}
	}
	return nil
}

// LEDeviceAddress is the advertiser's own address (0x1B): six address
// bytes and a type byte whose bit 0 marks a random address.
type LEDeviceAddress struct {
	Address BDAddr
	Random  bool
}

// Type implements adv.Record.
func (LEDeviceAddress) Type() adv.RecordType { return TypeLEDeviceAddress }

// Decode implements adv.Record.
func (LEDeviceAddress) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 7 {
		return nil, false
	}
	raw := p.Bytes()
	if raw[6]&0xFE != 0 {
		return nil, false
	}
	var a BDAddr
	copy(a[:], raw[0:6])
	return LEDeviceAddress{Address: a, Random: raw[6]&0x01 != 0}, true
}

// AppendPayload implements adv.Record.
func (d LEDeviceAddress) AppendPayload(buf adv.Buffer) error {
	if err := buf.Append(d.Address[:]); err != nil {
		return err
	}
	var kind byte
	if d.Random {
		kind = 0x01
	}
	return buf.AppendByte(kind)
}

// LE role enumerants [Supplement, Part A, 1.17].
const (
	RolePeripheralOnly      = 0x00
	RoleCentralOnly         = 0x01
	RolePeripheralPreferred = 0x02
	RoleCentralPreferred    = 0x03
)

// LERole advertises the supported connection roles (0x1C).
type LERole struct {
	Role byte
}

// Type implements adv.Record.
func (LERole) Type() adv.RecordType { return TypeLERole }

// Decode implements adv.Record.
func (LERole) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 1 || p.Byte(0) > RoleCentralPreferred {
		return nil, false
	}
	return LERole{Role: p.Byte(0)}, true
}

// AppendPayload implements adv.Record.
func (r LERole) AppendPayload(buf adv.Buffer) error {
	return buf.AppendByte(r.Role)
}

// URI carries a URI string (0x24). The first byte is an encoded scheme
// prefix from the assigned numbers document; 0x01 means the scheme is
// spelled out in the string itself.
type URI struct {
	Scheme byte
	URI    string
}

// Type implements adv.Record.
func (URI) Type() adv.RecordType { return TypeURI }

// Decode implements adv.Record.
func (URI) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < 1 {
		return nil, false
	}
	raw := p.Bytes()
	return URI{Scheme: raw[0], URI: string(raw[1:])}, true
}

// AppendPayload implements adv.Record.
func (u URI) AppendPayload(buf adv.Buffer) error {
	if err := buf.AppendByte(u.Scheme); err != nil {
		return err
	}
	return buf.Append([]byte(u.URI))
}

// SecurityManagerTKValue carries the out-of-band temporary key (0x10).
type SecurityManagerTKValue struct {
	TK [16]byte
}

// Type implements adv.Record.
func (SecurityManagerTKValue) Type() adv.RecordType { return TypeSecurityManagerTKValue }

// Decode implements adv.Record.
func (SecurityManagerTKValue) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 16 {
		return nil, false
	}
	var tk [16]byte
	copy(tk[:], p.Bytes())
	return SecurityManagerTKValue{TK: tk}, true
}

// AppendPayload implements adv.Record.
func (t SecurityManagerTKValue) AppendPayload(buf adv.Buffer) error {
	return buf.Append(t.TK[:])
}

// SecurityManagerOOBFlags is the out-of-band pairing flag octet (0x11).
type SecurityManagerOOBFlags struct {
	Flags byte
}

// Type implements adv.Record.
func (SecurityManagerOOBFlags) Type() adv.RecordType { return TypeSecurityManagerOOBFlags }

// Decode implements adv.Record.
func (SecurityManagerOOBFlags) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 1 {
		return nil, false
	}
	return SecurityManagerOOBFlags{Flags: p.Byte(0)}, true
}

// AppendPayload implements adv.Record.
func (f SecurityManagerOOBFlags) AppendPayload(buf adv.Buffer) error {
	return buf.AppendByte(f.Flags)
}

// AdvertisingInterval is the advertising interval in 0.625 ms units
// (0x1A).
type AdvertisingInterval struct {
	Interval uint16
}

// Type implements adv.Record.
func (AdvertisingInterval) Type() adv.RecordType { return TypeAdvertisingInterval }

// Decode implements adv.Record.
func (AdvertisingInterval) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() != 2 {
		return nil, false
	}
	return AdvertisingInterval{Interval: binary.LittleEndian.Uint16(p.Bytes())}, true
}

// AppendPayload implements adv.Record.
func (a AdvertisingInterval) AppendPayload(buf adv.Buffer) error {
	return buf.Append([]byte{byte(a.Interval), byte(a.Interval >> 8)})
}

// Opaque carries a record whose payload the library frames but does not
// interpret beyond a minimum length check. The default registry uses it
// for the long tail of assigned types.
type Opaque struct {
	Code   adv.RecordType
	MinLen int
	Data   []byte
}

// Type implements adv.Record.
func (o Opaque) Type() adv.RecordType { return o.Code }

// Decode implements adv.Record.
func (o Opaque) Decode(p adv.Slice) (adv.Record, bool) {
	if p.Len() < o.MinLen {
		return nil, false
	}
	return Opaque{Code: o.Code, MinLen: o.MinLen, Data: p.Bytes()}, true
}

// AppendPayload implements adv.Record.
func (o Opaque) AppendPayload(buf adv.Buffer) error {
	return buf.Append(o.Data)
}
