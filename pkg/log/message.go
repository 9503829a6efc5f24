package log

import (
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// NewRequestMessage describes req as it was routed by a port.
func NewRequestMessage(req *rdm.Request, routing Routing, targets int) *MessageEvent {
	return &MessageEvent{
		Type:              MessageTypeRequest,
		Source:            req.Source(),
		Destination:       req.Destination(),
		TransactionNumber: req.TransactionNumber(),
		CommandClass:      req.CommandClass(),
		ParamID:           req.ParamID(),
		SubDevice:         req.SubDevice(),
		Routing:           routing,
		Targets:           targets,
		ParamData:         req.ParamData(),
	}
}

// NewResponseMessage describes the completion of req. resp may be nil, in
// which case the addressing is mirrored from the request.
func NewResponseMessage(req *rdm.Request, code rdm.StatusCode, resp *rdm.Response, elapsed time.Duration) *MessageEvent {
	m := &MessageEvent{
		Type:              MessageTypeResponse,
		Source:            req.Destination(),
		Destination:       req.Source(),
		TransactionNumber: req.TransactionNumber(),
		CommandClass:      req.CommandClass().ResponseClass(),
		ParamID:           req.ParamID(),
		SubDevice:         req.SubDevice(),
		Status:            &code,
		ProcessingTime:    &elapsed,
	}
	if resp == nil {
		return m
	}
	m.Source = resp.Source
	m.Destination = resp.Destination
	m.TransactionNumber = resp.TransactionNumber
	m.CommandClass = resp.CommandClass
	m.ParamID = resp.ParamID
	m.SubDevice = resp.SubDevice
	rt := resp.ResponseType
	m.ResponseType = &rt
	if reason, ok := resp.NackReason(); ok {
		m.NackReason = &reason
	} else if len(resp.ParamData) > 0 {
		m.ParamData = append([]byte(nil), resp.ParamData...)
	}
	return m
}
