// Package company maps Bluetooth company identifiers to member names.
// The table holds the identifiers commonly seen in manufacturer
// specific advertising data, not the full assigned numbers list.
package company

var names = map[uint16]string{
	0x0000: "Ericsson Technology Licensing",
	0x0001: "Nokia Mobile Phones",
	0x0002: "Intel Corp.",
	0x0003: "IBM Corp.",
	0x0004: "Toshiba Corp.",
	0x0005: "3Com",
	0x0006: "Microsoft",
	0x0008: "Motorola",
	0x000A: "CSR",
	0x000D: "Texas Instruments Inc.",
	0x000F: "Broadcom Corporation",
	0x0010: "Mitel Semiconductor",
	0x001D: "Qualcomm",
	0x0025: "NXP Semiconductors",
	0x002B: "Tenovis",
	0x0030: "ST Microelectronics",
	0x003B: "Gennum Corporation",
	0x003D: "IAR Systems AB",
	0x0047: "Plantronics, Inc.",
	0x004C: "Apple, Inc.",
	0x004F: "APT Ltd.",
	0x0056: "Sony Ericsson Mobile Communications",
	0x0059: "Nordic Semiconductor ASA",
	0x005D: "Realtek Semiconductor Corporation",
	0x0065: "HP, Inc.",
	0x0075: "Samsung Electronics Co. Ltd.",
	0x0078: "Nike, Inc.",
	0x0087: "Garmin International, Inc.",
	0x008A: "Jawbone",
	0x009E: "Bose Corporation",
	0x00A0: "9Solutions Oy",
	0x00C4: "LG Electronics",
	0x00D2: "Dialog Semiconductor B.V.",
	0x00D6: "Continental Automotive Systems",
	0x00E0: "Google",
	0x0101: "Fitbit, Inc.",
	0x0110: "Nippon Seiki Co., Ltd.",
	0x0118: "Radius Networks, Inc.",
	0x0131: "Cypress Semiconductor",
	0x013A: "Estimote, Inc.",
	0x0154: "Xiaomi Inc.",
	0x0157: "Anhui Huami Information Technology Co., Ltd.",
	0x0171: "Amazon.com Services LLC",
	0x01DA: "Logitech International SA",
	0x0201: "Ruuvi Innovations Ltd.",
	0x022B: "Tesla, Inc.",
	0x059A: "Bosch Sensortec GmbH",
	0x06E8: "Shenzhen Goodix Technology Co., Ltd.",
	0x0822: "adafruit industries",
	0x08A9: "Espressif Systems (Shanghai) Co., Ltd.",
	0xFFFF: "reserved for testing",
}

// Name returns the member name for an assigned company identifier.
func Name(id uint16) (string, bool) {
	name, ok := names[id]
	return name, ok
}
