package rdm

import (
	"fmt"
	"strings"
)

// PID is an RDM parameter ID.
type PID uint16

// Parameter IDs served by the core (E1.20 Table A-3).
const (
	PIDDiscUniqueBranch          PID = 0x0001
	PIDDiscMute                  PID = 0x0002
	PIDDiscUnMute                PID = 0x0003
	PIDSupportedParameters       PID = 0x0050
	PIDParameterDescription      PID = 0x0051
	PIDDeviceInfo                PID = 0x0060
	PIDProductDetailIDList       PID = 0x0070
	PIDDeviceModelDescription    PID = 0x0080
	PIDManufacturerLabel         PID = 0x0081
	PIDDeviceLabel               PID = 0x0082
	PIDSoftwareVersionLabel      PID = 0x00C0
	PIDDMXPersonality            PID = 0x00E0
	PIDDMXPersonalityDescription PID = 0x00E1
	PIDDMXStartAddress           PID = 0x00F0
	PIDDeviceHours               PID = 0x0400
	PIDLampHours                 PID = 0x0401
	PIDLampStrikes               PID = 0x0402
	PIDRealTimeClock             PID = 0x0603
	PIDIdentifyDevice            PID = 0x1000
)

var pidNames = map[PID]string{
	PIDDiscUniqueBranch:          "DISC_UNIQUE_BRANCH",
	PIDDiscMute:                  "DISC_MUTE",
	PIDDiscUnMute:                "DISC_UN_MUTE",
	PIDSupportedParameters:       "SUPPORTED_PARAMETERS",
	PIDParameterDescription:      "PARAMETER_DESCRIPTION",
	PIDDeviceInfo:                "DEVICE_INFO",
	PIDProductDetailIDList:       "PRODUCT_DETAIL_ID_LIST",
	PIDDeviceModelDescription:    "DEVICE_MODEL_DESCRIPTION",
	PIDManufacturerLabel:         "MANUFACTURER_LABEL",
	PIDDeviceLabel:               "DEVICE_LABEL",
	PIDSoftwareVersionLabel:      "SOFTWARE_VERSION_LABEL",
	PIDDMXPersonality:            "DMX_PERSONALITY",
	PIDDMXPersonalityDescription: "DMX_PERSONALITY_DESCRIPTION",
	PIDDMXStartAddress:           "DMX_START_ADDRESS",
	PIDDeviceHours:               "DEVICE_HOURS",
	PIDLampHours:                 "LAMP_HOURS",
	PIDLampStrikes:               "LAMP_STRIKES",
	PIDRealTimeClock:             "REAL_TIME_CLOCK",
	PIDIdentifyDevice:            "IDENTIFY_DEVICE",
}

// String returns the PID name, or its hex value if unknown.
func (p PID) String() string {
	if name, ok := pidNames[p]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(p))
}

// ParsePID accepts a PID name in any case (e.g. "DEVICE_INFO") or a
// number ("0x0060", "96").
func ParsePID(s string) (PID, error) {
	for pid, name := range pidNames {
		if strings.EqualFold(name, s) {
			return pid, nil
		}
	}
	var v uint16
	if _, err := fmt.Sscan(s, &v); err != nil {
		return 0, fmt.Errorf("unknown PID %q", s)
	}
	return PID(v), nil
}

// ProductCategory is the product category field of DEVICE_INFO (E1.20 Table A-5).
type ProductCategory uint16

const (
	ProductCategoryNotDeclared   ProductCategory = 0x0000
	ProductCategoryFixture       ProductCategory = 0x0100
	ProductCategoryFixtureFixed  ProductCategory = 0x0101
	ProductCategoryDimmer        ProductCategory = 0x0500
	ProductCategoryPower         ProductCategory = 0x0600
	ProductCategoryControl       ProductCategory = 0x0700
	ProductCategoryTest          ProductCategory = 0x7100
	ProductCategoryTestEquipment ProductCategory = 0x7101
	ProductCategoryOther         ProductCategory = 0x7FFF
)

// ProductDetail is an entry of PRODUCT_DETAIL_ID_LIST (E1.20 Table A-6).
type ProductDetail uint16

const (
	ProductDetailNotDeclared ProductDetail = 0x0000
	ProductDetailLED         ProductDetail = 0x0004
	ProductDetailTest        ProductDetail = 0x0900
	ProductDetailOther       ProductDetail = 0x7FFF
)
