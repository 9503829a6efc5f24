// Package config loads dummy device descriptions from YAML files.
//
// A file names the device and lists its ports:
//
//	name: bench
//	log_level: debug
//	protocol_log: /tmp/bench.rlog
//	ports:
//	  - id: 0
//	    first_uid: "7a70:ffffff00"
//	    responders: 4
//	    personality: 2
//	  - id: 1
//	    manufacturer: "0x4321"
//	    start_device_id: "0x00000010"
//	    response_delay: 20ms
//
// Keys left out take the defaults of port.DefaultConfig.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rdm-protocol/rdm-go/pkg/port"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// ErrInvalid is returned for files that parse but describe an unusable
// device.
var ErrInvalid = errors.New("invalid device config")

// DefaultDeviceName is used when a file does not name the device.
const DefaultDeviceName = "dummy"

// Config describes a device and its ports.
type Config struct {
	Name        string
	LogLevel    slog.Level
	ProtocolLog string
	Ports       []PortConfig
}

// PortConfig is the configuration of one port.
type PortConfig struct {
	ID uint
	port.Config
}

// Default returns a device with a single default port.
func Default() Config {
	return Config{
		Name:     DefaultDeviceName,
		LogLevel: slog.LevelInfo,
		Ports:    []PortConfig{{ID: 0, Config: port.DefaultConfig()}},
	}
}

type fileConfig struct {
	Name        string     `yaml:"name"`
	LogLevel    string     `yaml:"log_level"`
	ProtocolLog string     `yaml:"protocol_log"`
	Ports       []portFile `yaml:"ports"`
}

type portFile struct {
	ID            *uint   `yaml:"id"`
	FirstUID      string  `yaml:"first_uid"`
	Manufacturer  string  `yaml:"manufacturer"`
	StartDeviceID string  `yaml:"start_device_id"`
	Responders    *int    `yaml:"responders"`
	Personality   *uint8  `yaml:"personality"`
	StartAddress  *uint16 `yaml:"start_address"`
	DeviceLabel   *string `yaml:"device_label"`
	ResponseDelay string  `yaml:"response_delay"`
}

// Load reads and validates the device file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load device config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load device config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML device description. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	cfg := Default()
	if name := strings.TrimSpace(raw.Name); name != "" {
		cfg.Name = name
	}
	if raw.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
	}
	cfg.ProtocolLog = strings.TrimSpace(raw.ProtocolLog)

	if len(raw.Ports) > 0 {
		cfg.Ports = cfg.Ports[:0]
		for i, pf := range raw.Ports {
			pc, err := pf.resolve(uint(i))
			if err != nil {
				return Config{}, fmt.Errorf("ports[%d]: %w", i, err)
			}
			cfg.Ports = append(cfg.Ports, pc)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (pf portFile) resolve(index uint) (PortConfig, error) {
	pc := PortConfig{ID: index, Config: port.DefaultConfig()}
	if pf.ID != nil {
		pc.ID = *pf.ID
	}

	if pf.FirstUID != "" {
		if pf.Manufacturer != "" || pf.StartDeviceID != "" {
			return PortConfig{}, fmt.Errorf("%w: first_uid excludes manufacturer and start_device_id", ErrInvalid)
		}
		uid, err := rdm.ParseUID(pf.FirstUID)
		if err != nil {
			return PortConfig{}, fmt.Errorf("first_uid: %w", err)
		}
		pc.ManufacturerID = uid.ManufacturerID()
		pc.StartDeviceID = uid.DeviceID()
	}
	if pf.Manufacturer != "" {
		v, err := parseHex(pf.Manufacturer, 16)
		if err != nil {
			return PortConfig{}, fmt.Errorf("manufacturer: %w", err)
		}
		pc.ManufacturerID = uint16(v)
	}
	if pf.StartDeviceID != "" {
		v, err := parseHex(pf.StartDeviceID, 32)
		if err != nil {
			return PortConfig{}, fmt.Errorf("start_device_id: %w", err)
		}
		pc.StartDeviceID = uint32(v)
	}

	if pf.Responders != nil {
		pc.ResponderCount = *pf.Responders
	}
	if pf.Personality != nil {
		pc.Personality = *pf.Personality
	}
	if pf.StartAddress != nil {
		pc.StartAddress = *pf.StartAddress
	}
	if pf.DeviceLabel != nil {
		pc.DeviceLabel = *pf.DeviceLabel
	}
	if pf.ResponseDelay != "" {
		d, err := time.ParseDuration(strings.TrimSpace(pf.ResponseDelay))
		if err != nil {
			return PortConfig{}, fmt.Errorf("response_delay: %w", err)
		}
		if d < 0 {
			return PortConfig{}, fmt.Errorf("%w: negative response_delay", ErrInvalid)
		}
		pc.ResponseDelay = d
	}
	return pc, nil
}

// Validate checks every port and that port IDs are unique.
func (c *Config) Validate() error {
	if len(c.Ports) == 0 {
		return fmt.Errorf("%w: no ports", ErrInvalid)
	}
	seen := make(map[uint]bool, len(c.Ports))
	for _, p := range c.Ports {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate port id %d", ErrInvalid, p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return fmt.Errorf("port %d: %w", p.ID, err)
		}
	}
	return nil
}

// parseHex parses a hexadecimal number with an optional 0x prefix.
func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, bits)
}
