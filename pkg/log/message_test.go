package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

func newTestRequest(t *testing.T, dst rdm.UID, data []byte) *rdm.Request {
	t.Helper()
	req, err := rdm.NewSetRequest(rdm.RequestHeader{
		Source:            controller,
		Destination:       dst,
		TransactionNumber: 42,
		SubDevice:         rdm.RootDevice,
	}, rdm.PIDDMXStartAddress, data)
	require.NoError(t, err)
	return req
}

func TestNewRequestMessage(t *testing.T) {
	req := newTestRequest(t, rdm.BroadcastUID, []byte{0x00, 0x10})

	m := NewRequestMessage(req, RoutingBroadcast, 3)

	assert.Equal(t, MessageTypeRequest, m.Type)
	assert.Equal(t, controller, m.Source)
	assert.Equal(t, rdm.BroadcastUID, m.Destination)
	assert.Equal(t, uint8(42), m.TransactionNumber)
	assert.Equal(t, rdm.CommandClassSet, m.CommandClass)
	assert.Equal(t, RoutingBroadcast, m.Routing)
	assert.Equal(t, 3, m.Targets)
	assert.Equal(t, []byte{0x00, 0x10}, m.ParamData)
	assert.Nil(t, m.Status)
}

func TestNewResponseMessageWithoutResponse(t *testing.T) {
	req := newTestRequest(t, fixture, nil)

	m := NewResponseMessage(req, rdm.StatusUnknownUID, nil, time.Millisecond)

	assert.Equal(t, MessageTypeResponse, m.Type)
	assert.Equal(t, fixture, m.Source)
	assert.Equal(t, controller, m.Destination)
	assert.Equal(t, rdm.CommandClassSetResponse, m.CommandClass)
	require.NotNil(t, m.Status)
	assert.Equal(t, rdm.StatusUnknownUID, *m.Status)
	assert.Nil(t, m.ResponseType)
	assert.Equal(t, time.Millisecond, *m.ProcessingTime)
}

func TestNewResponseMessageNack(t *testing.T) {
	req := newTestRequest(t, fixture, []byte{0x02, 0x01})
	resp := rdm.NackWithReason(req, rdm.NackDataOutOfRange, 0)

	m := NewResponseMessage(req, rdm.StatusCompletedOK, resp, 0)

	require.NotNil(t, m.ResponseType)
	assert.Equal(t, rdm.ResponseTypeNackReason, *m.ResponseType)
	require.NotNil(t, m.NackReason)
	assert.Equal(t, rdm.NackDataOutOfRange, *m.NackReason)
	assert.Empty(t, m.ParamData)
}

func TestNewResponseMessageAckCopiesData(t *testing.T) {
	req := newTestRequest(t, fixture, nil)
	resp := rdm.GetResponseFromData(req, []byte{0x01, 0x02}, rdm.ResponseTypeAck, 0)

	m := NewResponseMessage(req, rdm.StatusCompletedOK, resp, 0)
	resp.ParamData[0] = 0xff

	assert.Equal(t, []byte{0x01, 0x02}, m.ParamData)
	assert.Nil(t, m.NackReason)
}
