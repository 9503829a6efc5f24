package rdm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// UID segment constants.
const (
	// AllManufacturers is the manufacturer segment of the global broadcast UID.
	AllManufacturers uint16 = 0xFFFF

	// AllDevices is the device segment of every broadcast UID.
	AllDevices uint32 = 0xFFFFFFFF

	// OpenLightingESTACode is the manufacturer code used for simulated responders.
	OpenLightingESTACode uint16 = 0x7A70

	// UIDLength is the size of a UID on the wire.
	UIDLength = 6
)

// ErrInvalidUID is returned when a UID cannot be parsed.
var ErrInvalidUID = errors.New("invalid UID")

// BroadcastUID addresses every responder on a port.
var BroadcastUID = NewUID(AllManufacturers, AllDevices)

// UID is a 48-bit RDM unique identifier. The zero value is 0000:00000000.
// UIDs are comparable and can be used as map keys.
type UID struct {
	manufacturer uint16
	device       uint32
}

// NewUID builds a UID from its manufacturer and device segments.
func NewUID(manufacturerID uint16, deviceID uint32) UID {
	return UID{manufacturer: manufacturerID, device: deviceID}
}

// VendorcastUID returns the broadcast UID for all devices of one manufacturer.
func VendorcastUID(manufacturerID uint16) UID {
	return NewUID(manufacturerID, AllDevices)
}

// UIDFromUint64 builds a UID from the low 48 bits of v.
func UIDFromUint64(v uint64) UID {
	return NewUID(uint16(v>>32), uint32(v))
}

// UIDFromBytes decodes the 6-byte wire form of a UID.
func UIDFromBytes(b []byte) (UID, error) {
	if len(b) != UIDLength {
		return UID{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidUID, UIDLength, len(b))
	}
	return NewUID(binary.BigEndian.Uint16(b[0:2]), binary.BigEndian.Uint32(b[2:6])), nil
}

// ParseUID parses the text form "mmmm:dddddddd" (hexadecimal).
func ParseUID(s string) (UID, error) {
	manufacturer, device, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || manufacturer == "" || device == "" {
		return UID{}, fmt.Errorf("%w: %q", ErrInvalidUID, s)
	}
	m, err := strconv.ParseUint(manufacturer, 16, 16)
	if err != nil {
		return UID{}, fmt.Errorf("%w: manufacturer %q", ErrInvalidUID, manufacturer)
	}
	d, err := strconv.ParseUint(device, 16, 32)
	if err != nil {
		return UID{}, fmt.Errorf("%w: device %q", ErrInvalidUID, device)
	}
	return NewUID(uint16(m), uint32(d)), nil
}

// ManufacturerID returns the 16-bit manufacturer segment.
func (u UID) ManufacturerID() uint16 { return u.manufacturer }

// DeviceID returns the 32-bit device segment.
func (u UID) DeviceID() uint32 { return u.device }

// IsBroadcast reports whether u is the global broadcast or a vendorcast UID.
func (u UID) IsBroadcast() bool {
	return u.device == AllDevices
}

// DirectedToUID reports whether a message addressed to u should be
// processed by the responder with UID target.
func (u UID) DirectedToUID(target UID) bool {
	if u == target {
		return true
	}
	if !u.IsBroadcast() {
		return false
	}
	return u.manufacturer == AllManufacturers || u.manufacturer == target.manufacturer
}

// Compare orders UIDs by manufacturer, then device. It returns -1, 0 or +1.
func (u UID) Compare(other UID) int {
	switch {
	case u.manufacturer < other.manufacturer:
		return -1
	case u.manufacturer > other.manufacturer:
		return 1
	case u.device < other.device:
		return -1
	case u.device > other.device:
		return 1
	}
	return 0
}

// Less reports whether u sorts before other.
func (u UID) Less(other UID) bool {
	return u.Compare(other) < 0
}

// Uint64 returns the UID packed into the low 48 bits.
func (u UID) Uint64() uint64 {
	return uint64(u.manufacturer)<<32 | uint64(u.device)
}

// Bytes returns the 6-byte big-endian wire form.
func (u UID) Bytes() []byte {
	b := make([]byte, UIDLength)
	binary.BigEndian.PutUint16(b[0:2], u.manufacturer)
	binary.BigEndian.PutUint32(b[2:6], u.device)
	return b
}

// String returns the text form "mmmm:dddddddd".
func (u UID) String() string {
	return fmt.Sprintf("%04x:%08x", u.manufacturer, u.device)
}

// MarshalText implements encoding.TextMarshaler.
func (u UID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UID) UnmarshalText(text []byte) error {
	parsed, err := ParseUID(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the 6-byte wire form.
func (u UID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UID) UnmarshalBinary(data []byte) error {
	parsed, err := UIDFromBytes(data)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
