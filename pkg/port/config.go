package port

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Port errors.
var (
	ErrInvalidConfig       = errors.New("invalid port configuration")
	ErrInvalidResponderUID = errors.New("invalid responder UID")
	ErrDuplicateResponder  = errors.New("duplicate responder UID")
	ErrDuplicatePort       = errors.New("duplicate port id")
	ErrDeviceClosed        = errors.New("device closed")
)

// Defaults for a dummy port.
const (
	DefaultManufacturerID = rdm.OpenLightingESTACode
	DefaultResponderCount = 1
	DefaultStartDeviceID  = 0xffffff00
)

// Config configures a DummyPort populated with simulated responders.
type Config struct {
	// ManufacturerID is the manufacturer segment of every responder UID.
	ManufacturerID uint16 `yaml:"manufacturer_id"`

	// ResponderCount is the number of responders on the port.
	ResponderCount int `yaml:"responder_count"`

	// StartDeviceID is the device segment of the first responder; the
	// rest follow consecutively.
	StartDeviceID uint32 `yaml:"start_device_id"`

	// Initial responder state. Zero values select the responder defaults.
	Personality   uint8         `yaml:"personality"`
	StartAddress  uint16        `yaml:"start_address"`
	DeviceLabel   string        `yaml:"device_label"`
	ResponseDelay time.Duration `yaml:"response_delay"`

	// Logger for operational output (optional).
	Logger *slog.Logger `yaml:"-"`

	// ProtocolLogger receives a trace of routed requests (optional).
	ProtocolLogger log.Logger `yaml:"-"`
}

// DefaultConfig returns a Config with one responder at 7a70:ffffff00.
func DefaultConfig() Config {
	return Config{
		ManufacturerID: DefaultManufacturerID,
		ResponderCount: DefaultResponderCount,
		StartDeviceID:  DefaultStartDeviceID,
	}
}

// Validate checks that the configured UID block is usable.
func (c *Config) Validate() error {
	if c.ResponderCount < 1 {
		return fmt.Errorf("%w: responder count %d", ErrInvalidConfig, c.ResponderCount)
	}
	if c.ManufacturerID == rdm.AllManufacturers {
		return fmt.Errorf("%w: manufacturer %04x is reserved for broadcast", ErrInvalidConfig, c.ManufacturerID)
	}
	// The last responder must stay below the all-devices segment.
	last := uint64(c.StartDeviceID) + uint64(c.ResponderCount) - 1
	if last >= uint64(rdm.AllDevices) {
		return fmt.Errorf("%w: %d responders from device %08x reach the broadcast segment",
			ErrInvalidConfig, c.ResponderCount, c.StartDeviceID)
	}
	return nil
}

// UIDs returns the responder UIDs the config describes.
func (c *Config) UIDs() []rdm.UID {
	uids := make([]rdm.UID, 0, max(c.ResponderCount, 0))
	for i := 0; i < c.ResponderCount; i++ {
		uids = append(uids, rdm.NewUID(c.ManufacturerID, c.StartDeviceID+uint32(i)))
	}
	return uids
}
