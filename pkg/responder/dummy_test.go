package responder

import (
	"encoding/binary"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

func sendTo(t *testing.T, r Responder, dest rdm.UID, cc rdm.CommandClass, pid rdm.PID, sub uint16, data []byte) rdm.Result {
	t.Helper()
	req, err := rdm.NewRequest(rdm.RequestHeader{
		Source:            controllerUID,
		Destination:       dest,
		TransactionNumber: 1,
		SubDevice:         sub,
	}, cc, pid, data)
	require.NoError(t, err)

	cb, results := rdm.NewResultChannel(1)
	r.SendRDMRequest(req, cb)
	select {
	case res := <-results:
		return res
	case <-time.After(time.Second):
		t.Fatal("callback not invoked")
		return rdm.Result{}
	}
}

func get(t *testing.T, r Responder, pid rdm.PID, data []byte) rdm.Result {
	t.Helper()
	return sendTo(t, r, r.UID(), rdm.CommandClassGet, pid, rdm.RootDevice, data)
}

func set(t *testing.T, r Responder, pid rdm.PID, data []byte) rdm.Result {
	t.Helper()
	return sendTo(t, r, r.UID(), rdm.CommandClassSet, pid, rdm.RootDevice, data)
}

func TestDummyResponderDeviceInfo(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	res := get(t, d, rdm.PIDDeviceInfo, nil)
	require.Equal(t, rdm.StatusCompletedOK, res.Code)
	require.True(t, res.Response.IsAck())
	data := res.Response.ParamData
	require.Len(t, data, DeviceInfoLength)

	assert.Equal(t, ProtocolVersion, binary.BigEndian.Uint16(data[0:2]))
	assert.Equal(t, DummyModelID, binary.BigEndian.Uint16(data[2:4]))
	assert.Equal(t, uint16(5), binary.BigEndian.Uint16(data[10:12]), "footprint")
	assert.Equal(t, uint8(1), data[12], "current personality")
	assert.Equal(t, uint8(len(DefaultPersonalities)), data[13], "personality count")
	assert.Equal(t, uint16(1), binary.BigEndian.Uint16(data[14:16]), "start address")
}

func TestDummyResponderStartAddress(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	tests := []struct {
		name     string
		data     []byte
		wantNack *rdm.NackReason
		want     uint16
	}{
		{name: "valid", data: []byte{0x00, 0x64}, want: 100},
		{name: "last slot", data: []byte{0x02, 0x00}, want: 512},
		{name: "zero", data: []byte{0x00, 0x00}, wantNack: ptr(rdm.NackDataOutOfRange), want: 512},
		{name: "past end", data: []byte{0x02, 0x01}, wantNack: ptr(rdm.NackDataOutOfRange), want: 512},
		{name: "short", data: []byte{0x01}, wantNack: ptr(rdm.NackFormatError), want: 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := set(t, d, rdm.PIDDMXStartAddress, tt.data)
			require.Equal(t, rdm.StatusCompletedOK, res.Code)
			if tt.wantNack != nil {
				requireNack(t, res.Response, *tt.wantNack)
			} else {
				assert.True(t, res.Response.IsAck())
			}
			assert.Equal(t, tt.want, d.StartAddress())
		})
	}

	res := get(t, d, rdm.PIDDMXStartAddress, nil)
	assert.Equal(t, []byte{0x02, 0x00}, res.Response.ParamData)
}

func ptr[T any](v T) *T { return &v }

func TestDummyResponderPersonality(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{Personality: 2})
	assert.Equal(t, uint16(10), d.Footprint())

	res := get(t, d, rdm.PIDDMXPersonality, nil)
	assert.Equal(t, []byte{2, 4}, res.Response.ParamData)

	res = set(t, d, rdm.PIDDMXPersonality, []byte{3})
	assert.True(t, res.Response.IsAck())
	assert.Equal(t, uint16(20), d.Footprint())

	res = set(t, d, rdm.PIDDMXPersonality, []byte{5})
	requireNack(t, res.Response, rdm.NackDataOutOfRange)

	res = get(t, d, rdm.PIDDMXPersonalityDescription, []byte{2})
	assert.Equal(t, append([]byte{2, 0x00, 0x0a}, "Personality 2"...), res.Response.ParamData)

	res = set(t, d, rdm.PIDDMXPersonality, []byte{4})
	assert.True(t, res.Response.IsAck())
	res = get(t, d, rdm.PIDDMXStartAddress, nil)
	assert.Equal(t, []byte{0xff, 0xff}, res.Response.ParamData, "no footprint reports 0xffff")
}

func TestDummyResponderLabels(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	res := get(t, d, rdm.PIDManufacturerLabel, nil)
	assert.Equal(t, DummyManufacturer, string(res.Response.ParamData))

	res = get(t, d, rdm.PIDDeviceLabel, nil)
	assert.Equal(t, DefaultDeviceLabel, string(res.Response.ParamData))

	res = set(t, d, rdm.PIDDeviceLabel, []byte("Truss 2"))
	assert.True(t, res.Response.IsAck())
	assert.Equal(t, "Truss 2", d.DeviceLabel())

	res = set(t, d, rdm.PIDDeviceLabel, make([]byte, MaxLabelLength+1))
	requireNack(t, res.Response, rdm.NackFormatError)
	assert.Equal(t, "Truss 2", d.DeviceLabel())
}

func TestDummyResponderCounters(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	for _, pid := range []rdm.PID{rdm.PIDDeviceHours, rdm.PIDLampHours, rdm.PIDLampStrikes} {
		res := set(t, d, pid, []byte{0, 0, 1, 0})
		require.True(t, res.Response.IsAck(), pid.String())
		res = get(t, d, pid, nil)
		assert.Equal(t, []byte{0, 0, 1, 0}, res.Response.ParamData, pid.String())
	}
}

func TestDummyResponderErrors(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	res := get(t, d, rdm.PID(0x8123), nil)
	requireNack(t, res.Response, rdm.NackUnknownPID)

	res = set(t, d, rdm.PIDDeviceInfo, nil)
	requireNack(t, res.Response, rdm.NackUnsupportedCommandClass)

	res = sendTo(t, d, d.UID(), rdm.CommandClassGet, rdm.PIDDeviceInfo, 1, nil)
	requireNack(t, res.Response, rdm.NackSubDeviceOutOfRange)

	res = sendTo(t, d, d.UID(), rdm.CommandClassGet, rdm.PIDDeviceInfo, rdm.AllSubDevices, nil)
	requireNack(t, res.Response, rdm.NackSubDeviceOutOfRange)

	res = sendTo(t, d, d.UID(), rdm.CommandClassSet, rdm.PIDIdentifyDevice, rdm.AllSubDevices, []byte{1})
	assert.True(t, res.Response.IsAck())

	res = sendTo(t, d, d.UID(), rdm.CommandClassDiscover, rdm.PIDDiscMute, rdm.RootDevice, nil)
	assert.Equal(t, rdm.StatusDiscoveryNotSupported, res.Code)
	assert.Nil(t, res.Response)
}

func TestDummyResponderSupportedParameters(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	res := get(t, d, rdm.PIDSupportedParameters, nil)
	require.True(t, res.Response.IsAck())

	var pids []rdm.PID
	data := res.Response.ParamData
	for i := 0; i+1 < len(data); i += 2 {
		pids = append(pids, rdm.PID(binary.BigEndian.Uint16(data[i:])))
	}
	assert.Equal(t, SupportedParameters(), pids)
	assert.Contains(t, pids, rdm.PIDDeviceLabel)
	assert.NotContains(t, pids, rdm.PIDDeviceInfo)
	assert.True(t, slices.IsSorted(pids))
}

func TestDummyResponderBroadcast(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})

	res := sendTo(t, d, rdm.BroadcastUID, rdm.CommandClassSet, rdm.PIDIdentifyDevice, rdm.RootDevice, []byte{1})
	assert.Equal(t, rdm.StatusWasBroadcast, res.Code)
	assert.Nil(t, res.Response)
	assert.True(t, d.Identify())

	res = sendTo(t, d, rdm.VendorcastUID(fixtureUID.ManufacturerID()), rdm.CommandClassSet, rdm.PIDIdentifyDevice, rdm.RootDevice, []byte{0})
	assert.Equal(t, rdm.StatusWasBroadcast, res.Code)
	assert.False(t, d.Identify())

	res = sendTo(t, d, rdm.VendorcastUID(0x0001), rdm.CommandClassSet, rdm.PIDIdentifyDevice, rdm.RootDevice, []byte{1})
	assert.Equal(t, rdm.StatusTimeout, res.Code)
	assert.False(t, d.Identify())
}

func TestDummyResponderWrongUID(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})
	res := sendTo(t, d, rdm.NewUID(0x7a70, 1), rdm.CommandClassGet, rdm.PIDDeviceInfo, rdm.RootDevice, nil)
	assert.Equal(t, rdm.StatusTimeout, res.Code)
	assert.Nil(t, res.Response)
}

func TestDummyResponderClose(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{})
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	res := get(t, d, rdm.PIDDeviceInfo, nil)
	assert.Equal(t, rdm.StatusFailedToSend, res.Code)
}

func TestDummyResponderDelayedCompletion(t *testing.T) {
	d := NewDummyResponder(fixtureUID, DummyConfig{ResponseDelay: 20 * time.Millisecond})

	req, err := rdm.NewGetRequest(rdm.RequestHeader{Source: controllerUID, Destination: fixtureUID}, rdm.PIDIdentifyDevice, nil)
	require.NoError(t, err)

	cb, results := rdm.NewResultChannel(1)
	d.SendRDMRequest(req, cb)
	assert.Empty(t, results, "completion should be deferred")

	select {
	case res := <-results:
		assert.Equal(t, rdm.StatusCompletedOK, res.Code)
		assert.Equal(t, []byte{0}, res.Response.ParamData)
	case <-time.After(time.Second):
		t.Fatal("deferred callback not invoked")
	}
}

func TestNewDummyResponderClampsConfig(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	d := NewDummyResponder(fixtureUID, DummyConfig{Personality: 9, StartAddress: 600, DeviceLabel: long})
	assert.Equal(t, uint16(5), d.Footprint())
	assert.Equal(t, uint16(1), d.StartAddress())
	assert.Equal(t, long[:MaxLabelLength], d.DeviceLabel())
}
