package gap

import (
	"bytes"
	"testing"

	"github.com/daveverwer/Bluetooth/internal/adv"
)

func TestFlagsWireFormat(t *testing.T) {
	buf, err := adv.EncodeAdvertising([]adv.Record{Flags{Flags: 0x06}})
	if err != nil {
		t.Fatalf("EncodeAdvertising: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x02, 0x01, 0x06}) {
		t.Fatalf("unexpected wire bytes: %X", buf.Bytes())
	}
	dec := adv.NewDecoder(DefaultRecords()...)
	got, err := dec.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	flags, ok := got[0].(Flags)
	if !ok || flags.Flags != 0x06 {
		t.Fatalf("unexpected record: %#v", got[0])
	}
}

func TestFlagsNames(t *testing.T) {
	names := Flags{Flags: FlagLEGeneralDiscoverable | FlagBREDRNotSupported}.Names()
	if len(names) != 2 || names[0] != "le_general_discoverable" || names[1] != "br_edr_not_supported" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestFlagsRejectsEmptyPayload(t *testing.T) {
	if _, ok := (Flags{}).Decode(adv.NewSlice(nil)); ok {
		t.Fatal("decoded empty flags payload")
	}
}

func TestFlagsKeepsFirstOctet(t *testing.T) {
	// Payloads longer than one octet are valid; the extra octets are
	// reserved and ignored.
	rec, ok := (Flags{}).Decode(adv.NewSlice([]byte{0x06, 0x00}))
	if !ok {
		t.Fatal("rejected two-octet flags payload")
	}
	if rec.(Flags).Flags != 0x06 {
		t.Fatalf("unexpected record: %#v", rec)
	}
}

func TestServiceUUIDLists(t *testing.T) {
	rec, ok := (ServiceUUIDs16{Incomplete: true}).Decode(adv.NewSlice([]byte{0x0F, 0x18, 0x0D, 0x18}))
	if !ok {
		t.Fatal("decode failed")
	}
	list := rec.(ServiceUUIDs16)
	if !list.Incomplete {
		t.Fatal("prototype incompleteness lost")
	}
	if len(list.UUIDs) != 2 || list.UUIDs[0] != 0x180F || list.UUIDs[1] != 0x180D {
		t.Fatalf("unexpected uuids: %v", list.UUIDs)
	}
	if _, ok := (ServiceUUIDs16{}).Decode(adv.NewSlice([]byte{0x0F})); ok {
		t.Fatal("decoded odd-length uuid16 list")
	}
	if _, ok := (ServiceUUIDs32{}).Decode(adv.NewSlice([]byte{1, 2, 3})); ok {
		t.Fatal("decoded misaligned uuid32 list")
	}
	if _, ok := (ServiceUUIDs128{}).Decode(adv.NewSlice(make([]byte, 17))); ok {
		t.Fatal("decoded misaligned uuid128 list")
	}
}

func TestUUID128String(t *testing.T) {
	// Wire order is little-endian; String flips to the usual form.
	u := UUID128{0x9E, 0xCA, 0xDC, 0x24, 0x0E, 0xE5, 0xA9, 0xE0, 0x93, 0xF3, 0xA3, 0xB5, 0x01, 0x00, 0x40, 0x6E}
	want := "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	if got := u.String(); got != want {
		t.Fatalf("String: got %s want %s", got, want)
	}
}

func TestLocalNameRoundTrip(t *testing.T) {
	buf := adv.NewBuffer(16)
	if err := adv.Encode([]adv.Record{LocalName{Name: "edge-07", Short: true}}, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec := adv.NewDecoder(DefaultRecords()...)
	got, err := dec.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	name := got[0].(LocalName)
	if name.Name != "edge-07" || !name.Short {
		t.Fatalf("unexpected record: %#v", name)
	}
}

func TestManufacturerData(t *testing.T) {
	rec, ok := (ManufacturerData{}).Decode(adv.NewSlice([]byte{0x4C, 0x00, 0xBE, 0xEF}))
	if !ok {
		t.Fatal("decode failed")
	}
	m := rec.(ManufacturerData)
	if m.CompanyID != 0x004C || !bytes.Equal(m.Data, []byte{0xBE, 0xEF}) {
		t.Fatalf("unexpected record: %#v", m)
	}
	if _, ok := (ManufacturerData{}).Decode(adv.NewSlice([]byte{0x4C})); ok {
		t.Fatal("decoded short manufacturer payload")
	}
}

func TestConnectionIntervalRange(t *testing.T) {
	cases := []struct {
		payload []byte
		ok      bool
	}{
		{[]byte{0x06, 0x00, 0x80, 0x0C}, true},
		{[]byte{0xFF, 0xFF, 0x80, 0x0C}, true},
		{[]byte{0x80, 0x0C, 0x06, 0x00}, false}, // min > max
		{[]byte{0x05, 0x00, 0x80, 0x0C}, false}, // below range
		{[]byte{0x06, 0x00, 0x81, 0x0C}, false}, // above range
		{[]byte{0x06, 0x00, 0x80}, false},       // wrong length
	}
	for _, tc := range cases {
		_, ok := (ConnectionIntervalRange{}).Decode(adv.NewSlice(tc.payload))
		if ok != tc.ok {
			t.Fatalf("payload %X: ok=%v want %v", tc.payload, ok, tc.ok)
		}
	}
}

func TestLERoleEnumerant(t *testing.T) {
	if _, ok := (LERole{}).Decode(adv.NewSlice([]byte{RoleCentralPreferred})); !ok {
		t.Fatal("rejected valid role")
	}
	if _, ok := (LERole{}).Decode(adv.NewSlice([]byte{0x04})); ok {
		t.Fatal("decoded invalid role enumerant")
	}
}

func TestLEDeviceAddress(t *testing.T) {
	payload := []byte{0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x01}
	rec, ok := (LEDeviceAddress{}).Decode(adv.NewSlice(payload))
	if !ok {
		t.Fatal("decode failed")
	}
	addr := rec.(LEDeviceAddress)
	if !addr.Random || addr.Address.String() != "11:22:33:44:55:66" {
		t.Fatalf("unexpected record: %#v", addr)
	}
	payload[6] = 0x02
	if _, ok := (LEDeviceAddress{}).Decode(adv.NewSlice(payload)); ok {
		t.Fatal("decoded reserved address type bits")
	}
}

func TestEncryptedAdvertisingData(t *testing.T) {
	// Randomizer (5 bytes), at least one ciphertext byte, MIC (4 bytes).
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0xAA, 0xDE, 0xAD, 0xBE, 0xEF}
	dec := adv.NewDecoder(DefaultRecords()...)
	got, err := dec.Decode(adv.NewSlice(append([]byte{0x0B, 0x31}, payload...)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	op, ok := got[0].(Opaque)
	if !ok || op.Code != TypeEncryptedAdvertisingData || !bytes.Equal(op.Data, payload) {
		t.Fatalf("unexpected record: %#v", got[0])
	}
	if _, ok := (Opaque{Code: TypeEncryptedAdvertisingData, MinLen: 10}).Decode(adv.NewSlice(payload[:9])); ok {
		t.Fatal("decoded truncated encrypted advertising data")
	}
}

func TestDefaultRecordsUniqueCodes(t *testing.T) {
	seen := make(map[adv.RecordType]bool)
	for _, r := range DefaultRecords() {
		code := r.Type()
		if seen[code] {
			t.Fatalf("duplicate default registry entry for %s", code)
		}
		seen[code] = true
		if _, ok := TypeName(code); !ok {
			t.Fatalf("default entry %s has no type name", code)
		}
	}
	for code := range adv.TypeNames() {
		if !seen[code] {
			t.Fatalf("named type %s missing from default registry", code)
		}
	}
}
