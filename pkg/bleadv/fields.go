package bleadv

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/daveverwer/Bluetooth/internal/adv"
	"github.com/daveverwer/Bluetooth/internal/company"
	"github.com/daveverwer/Bluetooth/internal/gap"
)

const (
	uriSchemeHTTP  = 0x16
	uriSchemeHTTPS = 0x17
)

// buildFields flattens a record stream into a human-readable field map.
func buildFields(records []adv.Record) map[string]any {
	fields := make(map[string]any, len(records))
	var services, solicited []string
	for _, r := range records {
		switch rec := r.(type) {
		case gap.Flags:
			fields["flags"] = fmt.Sprintf("0x%02X", rec.Flags)
			for _, name := range rec.Names() {
				fields[name] = true
			}
		case gap.LocalName:
			if rec.Short {
				fields["short_name"] = rec.Name
			} else {
				fields["local_name"] = rec.Name
			}
		case gap.TxPowerLevel:
			fields["tx_power_dbm"] = int(rec.Level)
		case gap.ServiceUUIDs16:
			services = appendUUIDs16(services, rec.UUIDs)
			if rec.Incomplete {
				fields["services_incomplete"] = true
			}
		case gap.ServiceUUIDs32:
			services = appendUUIDs32(services, rec.UUIDs)
			if rec.Incomplete {
				fields["services_incomplete"] = true
			}
		case gap.ServiceUUIDs128:
			services = appendUUIDs128(services, rec.UUIDs)
			if rec.Incomplete {
				fields["services_incomplete"] = true
			}
		case gap.SolicitedUUIDs16:
			solicited = appendUUIDs16(solicited, rec.UUIDs)
		case gap.SolicitedUUIDs32:
			solicited = appendUUIDs32(solicited, rec.UUIDs)
		case gap.SolicitedUUIDs128:
			solicited = appendUUIDs128(solicited, rec.UUIDs)
		case gap.ManufacturerData:
			fields["manufacturer_id"] = fmt.Sprintf("0x%04X", rec.CompanyID)
			if name, ok := company.Name(rec.CompanyID); ok {
				fields["manufacturer_name"] = name
			}
			fields["manufacturer_data"] = hexUpper(rec.Data)
		case gap.ServiceData16:
			fields["service_data_"+rec.UUID.String()] = hexUpper(rec.Data)
		case gap.ServiceData32:
			fields["service_data_"+rec.UUID.String()] = hexUpper(rec.Data)
		case gap.ServiceData128:
			fields["service_data_"+rec.UUID.String()] = hexUpper(rec.Data)
		case gap.Appearance:
			fields["appearance"] = fmt.Sprintf("0x%04X", rec.Category)
		case gap.ConnectionIntervalRange:
			if rec.Min != 0xFFFF {
				fields["conn_interval_min_ms"] = float64(rec.Min) * 1.25
			}
			if rec.Max != 0xFFFF {
				fields["conn_interval_max_ms"] = float64(rec.Max) * 1.25
			}
		case gap.AdvertisingInterval:
			fields["advertising_interval_ms"] = float64(rec.Interval) * 0.625
		case gap.LERole:
			fields["le_role"] = roleName(rec.Role)
		case gap.LEDeviceAddress:
			fields["device_address"] = rec.Address.String()
			fields["device_address_random"] = rec.Random
		case gap.TargetAddress:
			key := "public_target_addresses"
			if rec.Random {
				key = "random_target_addresses"
			}
			addrs := make([]string, 0, len(rec.Addresses))
			for _, a := range rec.Addresses {
				addrs = append(addrs, a.String())
			}
			fields[key] = addrs
		case gap.URI:
			fields["uri"] = uriString(rec)
		case gap.SecurityManagerOOBFlags:
			fields["sm_oob_flags"] = fmt.Sprintf("0x%02X", rec.Flags)
		case gap.SecurityManagerTKValue:
			fields["sm_tk_value"] = hexUpper(rec.TK[:])
		case gap.Opaque:
			name, known := gap.TypeName(rec.Code)
			if !known {
				name = strings.ToLower(rec.Code.String())
			}
			fields[name] = hexUpper(rec.Data)
		}
	}
	if len(services) > 0 {
		fields["services"] = services
	}
	if len(solicited) > 0 {
		fields["solicited_services"] = solicited
	}
	return fields
}

func appendUUIDs16(dst []string, uuids []gap.UUID16) []string {
	for _, u := range uuids {
		dst = append(dst, u.String())
	}
	return dst
}

func appendUUIDs32(dst []string, uuids []gap.UUID32) []string {
	for _, u := range uuids {
		dst = append(dst, u.String())
	}
	return dst
}

func appendUUIDs128(dst []string, uuids []gap.UUID128) []string {
	for _, u := range uuids {
		dst = append(dst, u.String())
	}
	return dst
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func roleName(role byte) string {
	switch role {
	case gap.RolePeripheralOnly:
		return "peripheral_only"
	case gap.RoleCentralOnly:
		return "central_only"
	case gap.RolePeripheralPreferred:
		return "peripheral_preferred"
	case gap.RoleCentralPreferred:
		return "central_preferred"
	default:
		return fmt.Sprintf("0x%02X", role)
	}
}

func uriString(u gap.URI) string {
	switch u.Scheme {
	case uriSchemeHTTP:
		return "http:" + u.URI
	case uriSchemeHTTPS:
		return "https:" + u.URI
	default:
		return fmt.Sprintf("scheme(0x%02X):%s", u.Scheme, u.URI)
	}
}
