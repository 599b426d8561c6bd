package gap

import "github.com/daveverwer/Bluetooth/internal/adv"

// DefaultRecords returns prototype records for every assigned GAP data
// type this package knows, one entry per type code. Each call builds a
// fresh slice so decoders never share registry state.
func DefaultRecords() []adv.Record {
	return []adv.Record{
		Flags{},
		ServiceUUIDs16{Incomplete: true},
		ServiceUUIDs16{},
		ServiceUUIDs32{Incomplete: true},
		ServiceUUIDs32{},
		ServiceUUIDs128{Incomplete: true},
		ServiceUUIDs128{},
		LocalName{Short: true},
		LocalName{},
		TxPowerLevel{},
		Opaque{Code: TypeClassOfDevice, MinLen: 3},
		Opaque{Code: TypeSimplePairingHashC192, MinLen: 16},
		Opaque{Code: TypeSimplePairingRand192, MinLen: 16},
		SecurityManagerTKValue{},
		SecurityManagerOOBFlags{},
		ConnectionIntervalRange{},
		SolicitedUUIDs16{},
		SolicitedUUIDs128{},
		ServiceData16{},
		TargetAddress{},
		TargetAddress{Random: true},
		Appearance{},
		AdvertisingInterval{},
		LEDeviceAddress{},
		LERole{},
		Opaque{Code: TypeSimplePairingHashC256, MinLen: 16},
		Opaque{Code: TypeSimplePairingRand256, MinLen: 16},
		SolicitedUUIDs32{},
		ServiceData32{},
		ServiceData128{},
		Opaque{Code: TypeLESecureConnConfirmation, MinLen: 16},
		Opaque{Code: TypeLESecureConnRandom, MinLen: 16},
		URI{},
		Opaque{Code: TypeIndoorPositioning, MinLen: 1},
		Opaque{Code: TypeTransportDiscoveryData, MinLen: 2},
		Opaque{Code: TypeLESupportedFeatures},
		Opaque{Code: TypeChannelMapUpdateIndication, MinLen: 7},
		Opaque{Code: TypePBADV, MinLen: 6},
		Opaque{Code: TypeMeshMessage, MinLen: 1},
		Opaque{Code: TypeMeshBeacon, MinLen: 1},
		Opaque{Code: TypeBIGInfo, MinLen: 33},
		Opaque{Code: TypeBroadcastCode, MinLen: 4},
		Opaque{Code: TypeAdvertisingIntervalLong, MinLen: 3},
		Opaque{Code: TypeBroadcastName, MinLen: 4},
		Opaque{Code: TypeEncryptedAdvertisingData, MinLen: 10},
		Opaque{Code: Type3DInformationData, MinLen: 2},
		ManufacturerData{},
	}
}
