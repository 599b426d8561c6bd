// Package gap defines the concrete GAP advertising data structures and
// the default decode registry built from them.
package gap

import "github.com/daveverwer/Bluetooth/internal/adv"

// GAP data type codes from the Bluetooth assigned numbers document.
const (
	TypeFlags                      adv.RecordType = 0x01
	TypeIncompleteUUID16List       adv.RecordType = 0x02
	TypeCompleteUUID16List         adv.RecordType = 0x03
	TypeIncompleteUUID32List       adv.RecordType = 0x04
	TypeCompleteUUID32List         adv.RecordType = 0x05
	TypeIncompleteUUID128List      adv.RecordType = 0x06
	TypeCompleteUUID128List        adv.RecordType = 0x07
	TypeShortenedLocalName         adv.RecordType = 0x08
	TypeCompleteLocalName          adv.RecordType = 0x09
	TypeTxPowerLevel               adv.RecordType = 0x0A
	TypeClassOfDevice              adv.RecordType = 0x0D
	TypeSimplePairingHashC192      adv.RecordType = 0x0E
	TypeSimplePairingRand192       adv.RecordType = 0x0F
	TypeSecurityManagerTKValue     adv.RecordType = 0x10
	TypeSecurityManagerOOBFlags    adv.RecordType = 0x11
	TypeConnectionIntervalRange    adv.RecordType = 0x12
	TypeSolicitedUUID16List        adv.RecordType = 0x14
	TypeSolicitedUUID128List       adv.RecordType = 0x15
	TypeServiceData16              adv.RecordType = 0x16
	TypePublicTargetAddress        adv.RecordType = 0x17
	TypeRandomTargetAddress        adv.RecordType = 0x18
	TypeAppearance                 adv.RecordType = 0x19
	TypeAdvertisingInterval        adv.RecordType = 0x1A
	TypeLEDeviceAddress            adv.RecordType = 0x1B
	TypeLERole                     adv.RecordType = 0x1C
	TypeSimplePairingHashC256      adv.RecordType = 0x1D
	TypeSimplePairingRand256       adv.RecordType = 0x1E
	TypeSolicitedUUID32List        adv.RecordType = 0x1F
	TypeServiceData32              adv.RecordType = 0x20
	TypeServiceData128             adv.RecordType = 0x21
	TypeLESecureConnConfirmation   adv.RecordType = 0x22
	TypeLESecureConnRandom         adv.RecordType = 0x23
	TypeURI                        adv.RecordType = 0x24
	TypeIndoorPositioning          adv.RecordType = 0x25
	TypeTransportDiscoveryData     adv.RecordType = 0x26
	TypeLESupportedFeatures        adv.RecordType = 0x27
	TypeChannelMapUpdateIndication adv.RecordType = 0x28
	TypePBADV                      adv.RecordType = 0x29
	TypeMeshMessage                adv.RecordType = 0x2A
	TypeMeshBeacon                 adv.RecordType = 0x2B
	TypeBIGInfo                    adv.RecordType = 0x2C
	TypeBroadcastCode              adv.RecordType = 0x2D
	TypeAdvertisingIntervalLong    adv.RecordType = 0x2F
	TypeBroadcastName              adv.RecordType = 0x30
	TypeEncryptedAdvertisingData   adv.RecordType = 0x31
	Type3DInformationData          adv.RecordType = 0x3D
	TypeManufacturerData           adv.RecordType = 0xFF
)

// TypeName returns the snake_case name of an assigned type code.
func TypeName(t adv.RecordType) (string, bool) {
	return adv.TypeName(t)
}
