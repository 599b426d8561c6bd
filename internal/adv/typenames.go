package adv

// Snake_case names for the assigned GAP data type codes, keyed by the
// raw code so the codec can render them without a registry.
var typeNames = map[RecordType]string{
	0x01: "flags",
	0x02: "incomplete_uuid16_list",
	0x03: "complete_uuid16_list",
	0x04: "incomplete_uuid32_list",
	0x05: "complete_uuid32_list",
	0x06: "incomplete_uuid128_list",
	0x07: "complete_uuid128_list",
	0x08: "shortened_local_name",
	0x09: "complete_local_name",
	0x0A: "tx_power_level",
	0x0D: "class_of_device",
	0x0E: "simple_pairing_hash_c192",
	0x0F: "simple_pairing_randomizer_r192",
	0x10: "security_manager_tk_value",
	0x11: "security_manager_oob_flags",
	0x12: "peripheral_connection_interval_range",
	0x14: "solicited_uuid16_list",
	0x15: "solicited_uuid128_list",
	0x16: "service_data_uuid16",
	0x17: "public_target_address",
	0x18: "random_target_address",
	0x19: "appearance",
	0x1A: "advertising_interval",
	0x1B: "le_device_address",
	0x1C: "le_role",
	0x1D: "simple_pairing_hash_c256",
	0x1E: "simple_pairing_randomizer_r256",
	0x1F: "solicited_uuid32_list",
	0x20: "service_data_uuid32",
	0x21: "service_data_uuid128",
	0x22: "le_secure_connections_confirmation",
	0x23: "le_secure_connections_random",
	0x24: "uri",
	0x25: "indoor_positioning",
	0x26: "transport_discovery_data",
	0x27: "le_supported_features",
	0x28: "channel_map_update_indication",
	0x29: "pb_adv",
	0x2A: "mesh_message",
	0x2B: "mesh_beacon",
	0x2C: "big_info",
	0x2D: "broadcast_code",
	0x2F: "advertising_interval_long",
	0x30: "broadcast_name",
	0x31: "encrypted_advertising_data",
	0x3D: "3d_information_data",
	0xFF: "manufacturer_data",
}

// TypeName returns the snake_case name of an assigned type code.
func TypeName(t RecordType) (string, bool) {
	name, ok := typeNames[t]
	return name, ok
}

// TypeNames returns a copy of the assigned-name table.
func TypeNames() map[RecordType]string {
	out := make(map[RecordType]string, len(typeNames))
	for code, name := range typeNames {
		out[code] = name
	}
	return out
}
