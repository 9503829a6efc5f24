package log

import (
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Event is a single protocol trace record. Exactly one of the payload
// pointers is set, matching Category.
type Event struct {
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the port instance that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`

	// PortID is the index of the port within its device.
	PortID uint `cbor:"6,keyasint"`

	// Device is the name of the owning device, if any.
	Device string `cbor:"7,keyasint,omitempty"`

	Message   *MessageEvent   `cbor:"10,keyasint,omitempty"`
	Discovery *DiscoveryEvent `cbor:"11,keyasint,omitempty"`
	DMX       *DMXEvent       `cbor:"12,keyasint,omitempty"`
	Error     *ErrorEventData `cbor:"13,keyasint,omitempty"`
}

// Direction indicates whether an event flows into a port (requests, DMX
// writes) or out of it (completions, discovery results).
type Direction uint8

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which component captured the event.
type Layer uint8

const (
	// LayerPort is the dispatcher that routes requests to responders.
	LayerPort Layer = 0
	// LayerResponder is a responder answering a request.
	LayerResponder Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerPort:
		return "PORT"
	case LayerResponder:
		return "RESPONDER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event payload.
type Category uint8

const (
	CategoryMessage   Category = 0
	CategoryDiscovery Category = 1
	CategoryDMX       Category = 2
	CategoryError     Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryDiscovery:
		return "DISCOVERY"
	case CategoryDMX:
		return "DMX"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category with the given name (case sensitive,
// as printed by String).
func ParseCategory(name string) (Category, bool) {
	for c := CategoryMessage; c <= CategoryError; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// MessageEvent captures an RDM request or the completion reported for it.
type MessageEvent struct {
	Type MessageType `cbor:"1,keyasint"`

	Source            rdm.UID          `cbor:"2,keyasint"`
	Destination       rdm.UID          `cbor:"3,keyasint"`
	TransactionNumber uint8            `cbor:"4,keyasint"`
	CommandClass      rdm.CommandClass `cbor:"5,keyasint"`
	ParamID           rdm.PID          `cbor:"6,keyasint"`
	SubDevice         uint16           `cbor:"7,keyasint"`

	// Routing records how the port dispatched a request.
	Routing Routing `cbor:"8,keyasint"`

	// Targets is the number of responders a request was handed to.
	Targets int `cbor:"9,keyasint,omitempty"`

	// Completion fields.
	Status       *rdm.StatusCode   `cbor:"10,keyasint,omitempty"`
	ResponseType *rdm.ResponseType `cbor:"11,keyasint,omitempty"`
	NackReason   *rdm.NackReason   `cbor:"12,keyasint,omitempty"`

	ParamData []byte `cbor:"13,keyasint,omitempty"`

	// ProcessingTime is the time from dispatch to completion.
	ProcessingTime *time.Duration `cbor:"14,keyasint,omitempty"`
}

// MessageType distinguishes requests from completions.
type MessageType uint8

const (
	MessageTypeRequest  MessageType = 0
	MessageTypeResponse MessageType = 1
)

// String returns the message type name.
func (m MessageType) String() string {
	switch m {
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Routing describes the dispatch decision a port made for a request.
type Routing uint8

const (
	RoutingUnicast   Routing = 0
	RoutingBroadcast Routing = 1
	// RoutingUnknownUID means no responder owned the destination.
	RoutingUnknownUID Routing = 2
)

// String returns the routing name.
func (r Routing) String() string {
	switch r {
	case RoutingUnicast:
		return "UNICAST"
	case RoutingBroadcast:
		return "BROADCAST"
	case RoutingUnknownUID:
		return "UNKNOWN_UID"
	default:
		return "UNKNOWN"
	}
}

// DiscoveryEvent captures the outcome of a discovery run.
type DiscoveryEvent struct {
	Mode DiscoveryMode `cbor:"1,keyasint"`
	UIDs []rdm.UID     `cbor:"2,keyasint"`
}

// DiscoveryMode distinguishes full from incremental discovery.
type DiscoveryMode uint8

const (
	DiscoveryFull        DiscoveryMode = 0
	DiscoveryIncremental DiscoveryMode = 1
)

// String returns the discovery mode name.
func (m DiscoveryMode) String() string {
	switch m {
	case DiscoveryFull:
		return "FULL"
	case DiscoveryIncremental:
		return "INCREMENTAL"
	default:
		return "UNKNOWN"
	}
}

// DMXEvent captures a DMX512 frame written to a port.
type DMXEvent struct {
	// Size is the full frame length in slots.
	Size     int   `cbor:"1,keyasint"`
	Priority uint8 `cbor:"2,keyasint"`

	// Data holds the leading slots of the frame.
	Data      []byte `cbor:"3,keyasint,omitempty"`
	Truncated bool   `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a failure inside a port or responder.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`
	Context string `cbor:"3,keyasint,omitempty"`
}
