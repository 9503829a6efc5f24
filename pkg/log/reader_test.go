package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

func TestFilterMatches(t *testing.T) {
	base := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	other := rdm.NewUID(0x7a70, 0xffffff01)

	request := Event{
		Timestamp: base,
		SessionID: "s1",
		Direction: DirectionIn,
		Layer:     LayerPort,
		Category:  CategoryMessage,
		PortID:    1,
		Message: &MessageEvent{
			Type:        MessageTypeRequest,
			Source:      controller,
			Destination: fixture,
			ParamID:     rdm.PIDDeviceInfo,
		},
	}
	discovery := Event{
		Timestamp: base.Add(time.Second),
		SessionID: "s1",
		Direction: DirectionOut,
		Layer:     LayerPort,
		Category:  CategoryDiscovery,
		PortID:    1,
		Discovery: &DiscoveryEvent{UIDs: []rdm.UID{fixture, other}},
	}

	dirOut := DirectionOut
	layerResponder := LayerResponder
	catMessage := CategoryMessage
	port1 := uint(1)
	port2 := uint(2)
	pidInfo := rdm.PIDDeviceInfo
	pidLabel := rdm.PIDDeviceLabel
	start := base.Add(500 * time.Millisecond)
	end := base.Add(time.Second)

	tests := []struct {
		name      string
		filter    Filter
		request   bool
		discovery bool
	}{
		{"empty", Filter{}, true, true},
		{"session", Filter{SessionID: "s1"}, true, true},
		{"other session", Filter{SessionID: "s2"}, false, false},
		{"direction", Filter{Direction: &dirOut}, false, true},
		{"layer", Filter{Layer: &layerResponder}, false, false},
		{"category", Filter{Category: &catMessage}, true, false},
		{"port", Filter{PortID: &port1}, true, true},
		{"other port", Filter{PortID: &port2}, false, false},
		{"pid", Filter{PID: &pidInfo}, true, false},
		{"other pid", Filter{PID: &pidLabel}, false, false},
		{"uid as source", Filter{UID: &controller}, true, false},
		{"uid as destination and reported", Filter{UID: &fixture}, true, true},
		{"uid only reported", Filter{UID: &other}, false, true},
		{"time start inclusive", Filter{TimeStart: &base}, true, true},
		{"time start", Filter{TimeStart: &start}, false, true},
		{"time end exclusive", Filter{TimeEnd: &end}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.request, tt.filter.Matches(request), "request")
			assert.Equal(t, tt.discovery, tt.filter.Matches(discovery), "discovery")
		})
	}
}
