package hci

import (
	"bytes"
	"testing"

	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/gap"
	"github.com/daveverwer/Bluetooth/internal/testutil"
)

func TestParseReports(t *testing.T) {
	// Two reports: an ADV_IND carrying a flags record at -56 dBm and a
	// SCAN_RSP with empty data at -45 dBm.
	params := testutil.LoadBytes(t, "hci/adv_report.hex")
	reports, err := ParseReports(params)
	if err != nil {
		t.Fatalf("ParseReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	first := reports[0]
	if first.EventType != EventAdvInd || first.RSSI != -56 {
		t.Fatalf("unexpected first report: %#v", first)
	}
	if got := first.Address.String(); got != "11:22:33:44:55:66" {
		t.Fatalf("unexpected address: %s", got)
	}
	records, err := first.Records(adv.NewDecoder(gap.DefaultRecords()...))
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if flags := records[0].(gap.Flags); flags.Flags != 0x06 {
		t.Fatalf("unexpected flags: %#v", flags)
	}
	if len(reports[1].Data) != 0 || reports[1].RSSI != -45 {
		t.Fatalf("unexpected second report: %#v", reports[1])
	}
}

func TestReportProperties(t *testing.T) {
	cases := []struct {
		event byte
		want  []string
	}{
		{EventAdvInd, []string{"connectable", "scannable", "legacy"}},
		{EventAdvDirectInd, []string{"connectable", "directed", "legacy"}},
		{EventAdvScanInd, []string{"scannable", "legacy"}},
		{EventAdvNonconnInd, []string{"legacy"}},
		{EventScanRsp, []string{"scannable", "scan_response", "legacy"}},
	}
	for _, tc := range cases {
		got := AdvertisingReport{EventType: tc.event}.Properties()
		if len(got) != len(tc.want) {
			t.Fatalf("event 0x%02X: got %v want %v", tc.event, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("event 0x%02X: got %v want %v", tc.event, got, tc.want)
			}
		}
	}
}

func TestParseReportsTruncated(t *testing.T) {
	params := []byte{0x01, EventAdvInd, AddrPublic, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x05, 0x02, 0x01}
	if _, err := ParseReports(params); err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestParseReportsTrailingBytes(t *testing.T) {
	params := []byte{0x00, 0xAA}
	if _, err := ParseReports(params); err == nil {
		t.Fatal("expected trailing bytes error")
	}
}

func TestSetAdvertisingDataMarshal(t *testing.T) {
	cmd, err := NewSetAdvertisingData([]adv.Record{gap.Flags{Flags: 0x06}})
	if err != nil {
		t.Fatalf("NewSetAdvertisingData: %v", err)
	}
	block := cmd.Marshal()
	if len(block) != 32 {
		t.Fatalf("parameter block is %d bytes", len(block))
	}
	want := append([]byte{0x03, 0x02, 0x01, 0x06}, make([]byte, 28)...)
	if !bytes.Equal(block, want) {
		t.Fatalf("unexpected block: %X", block)
	}
}

func TestSetAdvertisingDataTooLarge(t *testing.T) {
	records := []adv.Record{gap.LocalName{Name: string(make([]byte, adv.AdvertisingBufferCap))}}
	if _, err := NewSetAdvertisingData(records); err == nil {
		t.Fatal("expected size error")
	}
}
