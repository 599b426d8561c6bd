// Package hci defines the advertising-related HCI structures that carry
// GAP record streams: the LE Advertising Report event on the receive
// side and the Set Advertising Data command on the transmit side.
package hci

import (
	"fmt"

	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/bits"
	"github.com/daveverwer/Bluetooth/internal/gap"
)

// Advertising event types [Vol 4, Part E, 7.7.65.2].
const (
	EventAdvInd        = 0x00 // Connectable undirected advertising (ADV_IND).
	EventAdvDirectInd  = 0x01 // Connectable directed advertising (ADV_DIRECT_IND).
	EventAdvScanInd    = 0x02 // Scannable undirected advertising (ADV_SCAN_IND).
	EventAdvNonconnInd = 0x03 // Non connectable undirected advertising (ADV_NONCONN_IND).
	EventScanRsp       = 0x04 // Scan response (SCAN_RSP).
)

// Address types [Vol 4, Part E, 7.7.65.2].
const (
	AddrPublic         = 0x00
	AddrRandom         = 0x01
	AddrPublicResolved = 0x02
	AddrRandomResolved = 0x03
)

// Event type property bits, following the extended advertising report
// assignments [Vol 4, Part E, 7.7.65.13].
const (
	PropConnectable  = 0x01
	PropScannable    = 0x02
	PropDirected     = 0x04
	PropScanResponse = 0x08
	PropLegacy       = 0x10
)

var propFlags = []bits.Flag{
	{Mask: PropConnectable, Name: "connectable"},
	{Mask: PropScannable, Name: "scannable"},
	{Mask: PropDirected, Name: "directed"},
	{Mask: PropScanResponse, Name: "scan_response"},
	{Mask: PropLegacy, Name: "legacy"},
}

// AdvertisingReport is one report from an LE Advertising Report event.
type AdvertisingReport struct {
	EventType   byte
	AddressType byte
	Address     gap.BDAddr
	Data        []byte
	RSSI        int8
}

// Records decodes the report's advertising data with the given decoder.
func (r AdvertisingReport) Records(d *adv.Decoder) ([]adv.Record, error) {
	return d.Decode(adv.NewSlice(r.Data))
}

// Properties names the PDU properties the report's event type implies.
func (r AdvertisingReport) Properties() []string {
	set := bits.OptionSet{Value: PropLegacy, Flags: propFlags}
	switch r.EventType {
	case EventAdvInd:
		set.Set(PropConnectable | PropScannable)
	case EventAdvDirectInd:
		set.Set(PropConnectable | PropDirected)
	case EventAdvScanInd:
		set.Set(PropScannable)
	case EventScanRsp:
		set.Set(PropScannable | PropScanResponse)
	}
	return set.Names()
}

// ParseReports extracts the reports from an LE Advertising Report event
// parameter block: a report count followed by that many variable-length
// reports.
func ParseReports(params []byte) ([]AdvertisingReport, error) {
	if len(params) < 1 {
		return nil, fmt.Errorf("hci: advertising report event too short: %d bytes", len(params))
	}
	count := int(params[0])
	reports := make([]AdvertisingReport, 0, count)
	i := 1
	for n := 0; n < count; n++ {
		if len(params) < i+9 {
			return nil, fmt.Errorf("hci: report %d header truncated at offset %d", n, i)
		}
		r := AdvertisingReport{
			EventType:   params[i],
			AddressType: params[i+1],
		}
		copy(r.Address[:], params[i+2:i+8])
		dataLen := int(params[i+8])
		i += 9
		if dataLen > adv.AdvertisingBufferCap {
			return nil, fmt.Errorf("hci: report %d declares %d data bytes, limit is %d", n, dataLen, adv.AdvertisingBufferCap)
		}
		if len(params) < i+dataLen+1 {
			return nil, fmt.Errorf("hci: report %d data truncated at offset %d", n, i)
		}
		r.Data = params[i : i+dataLen]
		i += dataLen
		r.RSSI = int8(params[i])
		i++
		reports = append(reports, r)
	}
	if i != len(params) {
		return nil, fmt.Errorf("hci: %d trailing bytes after %d reports", len(params)-i, count)
	}
	return reports, nil
}

// SetAdvertisingData is the LE Set Advertising Data command (OGF 0x08,
// OCF 0x0008) parameter block.
type SetAdvertisingData struct {
	Data *adv.AdvertisingBuffer
}

// NewSetAdvertisingData encodes records into a command, failing when
// they do not fit the advertising buffer.
func NewSetAdvertisingData(records []adv.Record) (SetAdvertisingData, error) {
	buf, err := adv.EncodeAdvertising(records)
	if err != nil {
		return SetAdvertisingData{}, err
	}
	return SetAdvertisingData{Data: buf}, nil
}

// Marshal renders the fixed 32-byte parameter block: a significant
// length byte followed by the data padded with zeros to 31 bytes.
func (c SetAdvertisingData) Marshal() []byte {
	out := make([]byte, 1+adv.AdvertisingBufferCap)
	if c.Data == nil {
		return out
	}
	out[0] = byte(c.Data.Len())
	copy(out[1:], c.Data.Bytes())
	return out
}
