package rdm

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Response is an RDM response. Its addressing is the reversal of the
// request it answers and TransactionNumber is copied from that request.
type Response struct {
	Source            UID
	Destination       UID
	TransactionNumber uint8
	PortID            uint8
	ResponseType      ResponseType
	MessageCount      uint8
	SubDevice         uint16
	CommandClass      CommandClass
	ParamID           PID
	ParamData         []byte
}

// GetResponseFromData builds a response to req carrying data.
// The data slice is copied.
func GetResponseFromData(req *Request, data []byte, responseType ResponseType, queuedMessageCount uint8) *Response {
	return &Response{
		Source:            req.Destination(),
		Destination:       req.Source(),
		TransactionNumber: req.TransactionNumber(),
		PortID:            req.PortID(),
		ResponseType:      responseType,
		MessageCount:      queuedMessageCount,
		SubDevice:         req.SubDevice(),
		CommandClass:      req.CommandClass().ResponseClass(),
		ParamID:           req.ParamID(),
		ParamData:         slices.Clone(data),
	}
}

// NackWithReason builds a NACK_REASON response carrying reason.
func NackWithReason(req *Request, reason NackReason, queuedMessageCount uint8) *Response {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(reason))
	return GetResponseFromData(req, data, ResponseTypeNackReason, queuedMessageCount)
}

// NewAckNoData builds an ACK without parameter data, used to confirm a SET.
func NewAckNoData(req *Request, queuedMessageCount uint8) *Response {
	return GetResponseFromData(req, nil, ResponseTypeAck, queuedMessageCount)
}

// IsAck returns true for an ACK response.
func (r *Response) IsAck() bool {
	return r.ResponseType == ResponseTypeAck
}

// NackReason returns the reason of a NACK_REASON response.
func (r *Response) NackReason() (NackReason, bool) {
	if r.ResponseType != ResponseTypeNackReason || len(r.ParamData) != 2 {
		return 0, false
	}
	return NackReason(binary.BigEndian.Uint16(r.ParamData)), true
}

// ParamDataSize returns the parameter data length.
func (r *Response) ParamDataSize() int {
	return len(r.ParamData)
}

// String returns a short description for logs.
func (r *Response) String() string {
	s := fmt.Sprintf("%s -> %s tn=%d %s %s %s",
		r.Source, r.Destination, r.TransactionNumber,
		r.CommandClass, r.ParamID, r.ResponseType)
	if reason, ok := r.NackReason(); ok {
		s += " " + reason.String()
	}
	return s
}
