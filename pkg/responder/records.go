package responder

import (
	"encoding/binary"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Record sizes.
const (
	DeviceInfoLength  = 19
	ClockRecordLength = 8

	// ProtocolVersion is RDM 1.0, reported in every DEVICE_INFO record.
	ProtocolVersion uint16 = 0x0100
)

// DeviceInfo holds the fields of the DEVICE_INFO record.
type DeviceInfo struct {
	ModelID            uint16
	ProductCategory    rdm.ProductCategory
	SoftwareVersion    uint32
	Footprint          uint16
	CurrentPersonality uint8
	PersonalityCount   uint8
	StartAddress       uint16
	SubDeviceCount     uint16
	SensorCount        uint8
}

// MarshalBinary writes the 19-byte DEVICE_INFO record.
func (d DeviceInfo) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, DeviceInfoLength)
	b = binary.BigEndian.AppendUint16(b, ProtocolVersion)
	b = binary.BigEndian.AppendUint16(b, d.ModelID)
	b = binary.BigEndian.AppendUint16(b, uint16(d.ProductCategory))
	b = binary.BigEndian.AppendUint32(b, d.SoftwareVersion)
	b = binary.BigEndian.AppendUint16(b, d.Footprint)
	b = append(b, d.CurrentPersonality, d.PersonalityCount)
	b = binary.BigEndian.AppendUint16(b, d.StartAddress)
	b = binary.BigEndian.AppendUint16(b, d.SubDeviceCount)
	b = append(b, d.SensorCount)
	return b, nil
}

// Clock holds the fields of the REAL_TIME_CLOCK record.
type Clock struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// ClockFromTime converts t, in its own location, to a Clock.
func ClockFromTime(t time.Time) Clock {
	return Clock{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}
}

// MarshalBinary writes the 8-byte clock record. The seven field bytes are
// followed by one zero pad byte.
func (c Clock) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, ClockRecordLength)
	b = binary.BigEndian.AppendUint16(b, c.Year)
	b = append(b, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0)
	return b, nil
}
