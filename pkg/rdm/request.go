package rdm

import (
	"fmt"
	"slices"
)

// Request limits and sub-device addresses.
const (
	// MaxParamDataLength is the largest parameter data an RDM message can carry.
	MaxParamDataLength = 231

	// RootDevice addresses the responder itself.
	RootDevice uint16 = 0

	// AllSubDevices addresses every sub-device; valid for SET only.
	AllSubDevices uint16 = 0xFFFF
)

// RequestHeader holds the addressing fields of a request.
type RequestHeader struct {
	Source            UID
	Destination       UID
	TransactionNumber uint8
	PortID            uint8
	MessageCount      uint8
	SubDevice         uint16
}

// Request is an immutable RDM request. Accessors never expose internal
// buffers, so a Request can be shared between goroutines and handed to
// several responders during broadcast fan-out.
type Request struct {
	header       RequestHeader
	commandClass CommandClass
	pid          PID
	data         []byte
}

// NewRequest validates and builds a request. The data slice is copied.
func NewRequest(header RequestHeader, cc CommandClass, pid PID, data []byte) (*Request, error) {
	if !cc.IsRequest() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCommandClass, cc)
	}
	if len(data) > MaxParamDataLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrParamDataTooLong, len(data), MaxParamDataLength)
	}
	return &Request{
		header:       header,
		commandClass: cc,
		pid:          pid,
		data:         slices.Clone(data),
	}, nil
}

// NewGetRequest builds a GET request.
func NewGetRequest(header RequestHeader, pid PID, data []byte) (*Request, error) {
	return NewRequest(header, CommandClassGet, pid, data)
}

// NewSetRequest builds a SET request.
func NewSetRequest(header RequestHeader, pid PID, data []byte) (*Request, error) {
	return NewRequest(header, CommandClassSet, pid, data)
}

// Source returns the controller's UID.
func (r *Request) Source() UID { return r.header.Source }

// Destination returns the addressed UID, possibly a broadcast UID.
func (r *Request) Destination() UID { return r.header.Destination }

// TransactionNumber returns the controller's transaction number.
func (r *Request) TransactionNumber() uint8 { return r.header.TransactionNumber }

// PortID returns the controller port ID.
func (r *Request) PortID() uint8 { return r.header.PortID }

// MessageCount returns the message count field.
func (r *Request) MessageCount() uint8 { return r.header.MessageCount }

// SubDevice returns the addressed sub-device (0 = root).
func (r *Request) SubDevice() uint16 { return r.header.SubDevice }

// CommandClass returns GET, SET or DISCOVER.
func (r *Request) CommandClass() CommandClass { return r.commandClass }

// ParamID returns the requested PID.
func (r *Request) ParamID() PID { return r.pid }

// ParamData returns a copy of the parameter data.
func (r *Request) ParamData() []byte { return slices.Clone(r.data) }

// ParamDataSize returns the parameter data length.
func (r *Request) ParamDataSize() int { return len(r.data) }

// Header returns the addressing fields.
func (r *Request) Header() RequestHeader { return r.header }

// String returns a short description for logs.
func (r *Request) String() string {
	return fmt.Sprintf("%s -> %s tn=%d %s %s sub=%d pdl=%d",
		r.header.Source, r.header.Destination, r.header.TransactionNumber,
		r.commandClass, r.pid, r.header.SubDevice, len(r.data))
}

// paramData gives package code read-only access without copying.
func (r *Request) paramData() []byte { return r.data }
