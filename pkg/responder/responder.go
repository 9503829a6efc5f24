package responder

//go:generate go run github.com/vektra/mockery/v2 --config ../../.mockery.yaml

import "github.com/rdm-protocol/rdm-go/pkg/rdm"

// Responder answers requests addressed to one UID.
//
// SendRDMRequest must invoke cb exactly once per call, either before
// returning or later from another goroutine. The request must not be
// modified; during broadcast fan-out the same request is passed to every
// responder on a port.
type Responder interface {
	UID() rdm.UID
	SendRDMRequest(req *rdm.Request, cb rdm.Callback)
}

// Footprinter is implemented by responders that consume DMX slots.
type Footprinter interface {
	Footprint() uint16
}
