package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/port"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseFullFile(t *testing.T) {
	data := []byte(`
name: bench
log_level: debug
protocol_log: /tmp/bench.rlog
ports:
  - id: 3
    first_uid: "7a70:00000010"
    responders: 4
    personality: 2
    start_address: 100
    device_label: Spot
  - manufacturer: "0x4321"
    start_device_id: "ff"
    response_delay: 20ms
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "bench", cfg.Name)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/bench.rlog", cfg.ProtocolLog)
	require.Len(t, cfg.Ports, 2)

	p0 := cfg.Ports[0]
	assert.Equal(t, uint(3), p0.ID)
	assert.Equal(t, uint16(0x7a70), p0.ManufacturerID)
	assert.Equal(t, uint32(0x10), p0.StartDeviceID)
	assert.Equal(t, 4, p0.ResponderCount)
	assert.Equal(t, uint8(2), p0.Personality)
	assert.Equal(t, uint16(100), p0.StartAddress)
	assert.Equal(t, "Spot", p0.DeviceLabel)

	p1 := cfg.Ports[1]
	assert.Equal(t, uint(1), p1.ID, "id defaults to the list index")
	assert.Equal(t, uint16(0x4321), p1.ManufacturerID)
	assert.Equal(t, uint32(0xff), p1.StartDeviceID)
	assert.Equal(t, port.DefaultResponderCount, p1.ResponderCount)
	assert.Equal(t, 20*time.Millisecond, p1.ResponseDelay)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour: red\n"},
		{"bad level", "log_level: loud\n"},
		{"bad uid", "ports:\n  - first_uid: nope\n"},
		{"uid and manufacturer", "ports:\n  - first_uid: \"7a70:1\"\n    manufacturer: \"1\"\n"},
		{"manufacturer too wide", "ports:\n  - manufacturer: \"0x12345\"\n"},
		{"bad delay", "ports:\n  - response_delay: soon\n"},
		{"negative delay", "ports:\n  - response_delay: -1s\n"},
		{"zero responders", "ports:\n  - responders: 0\n"},
		{"duplicate ids", "ports:\n  - id: 1\n  - id: 1\n    first_uid: \"7a70:1\"\n"},
		{"block reaches broadcast", "ports:\n  - first_uid: \"7a70:fffffffe\"\n    responders: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseInvalidWrapsSentinels(t *testing.T) {
	_, err := Parse([]byte("ports:\n  - id: 1\n  - id: 1\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("ports:\n  - responders: 0\n"))
	assert.ErrorIs(t, err, port.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: lab\nports:\n  - responders: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lab", cfg.Name)
	require.Len(t, cfg.Ports, 1)
	assert.Equal(t, 8, cfg.Ports[0].ResponderCount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
