package port

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
	"github.com/rdm-protocol/rdm-go/pkg/responder"
)

// DummyPortDescription is reported by every DummyPort.
const DummyPortDescription = "Dummy Port"

// Port is the controller-facing surface of a port.
type Port interface {
	Discoverable

	ID() uint
	Description() string
	UIDs() *rdm.UIDSet
	WriteDMX(buf []byte, priority uint8) bool
	SendRDMRequest(req *rdm.Request, cb rdm.Callback)
	Close() error
}

// registry is an immutable snapshot of the responders on a port.
type registry struct {
	byUID map[rdm.UID]responder.Responder
	order []rdm.UID // ascending
}

func newRegistry(responders []responder.Responder) (*registry, error) {
	reg := &registry{
		byUID: make(map[rdm.UID]responder.Responder, len(responders)),
		order: make([]rdm.UID, 0, len(responders)),
	}
	for _, r := range responders {
		uid := r.UID()
		if uid.IsBroadcast() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidResponderUID, uid)
		}
		if _, exists := reg.byUID[uid]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateResponder, uid)
		}
		reg.byUID[uid] = r
		reg.order = append(reg.order, uid)
	}
	slices.SortFunc(reg.order, rdm.UID.Compare)
	return reg, nil
}

// DummyPort is a port whose responders live in process.
// It is safe for concurrent use.
type DummyPort struct {
	id        uint
	parent    *Device
	sessionID string

	logger         *slog.Logger
	protocolLogger log.Logger

	// Replaced wholesale on Close; lookups never lock.
	registry atomic.Pointer[registry]
	closed   atomic.Bool

	dmxMu sync.Mutex
	dmx   []byte
}

// NewDummyPort creates a port populated with DummyResponders at
// consecutive UIDs as described by cfg.
func NewDummyPort(parent *Device, id uint, cfg Config) (*DummyPort, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	uids := cfg.UIDs()
	responders := make([]responder.Responder, 0, len(uids))
	for _, uid := range uids {
		responders = append(responders, responder.NewDummyResponder(uid, responder.DummyConfig{
			Personality:   cfg.Personality,
			StartAddress:  cfg.StartAddress,
			DeviceLabel:   cfg.DeviceLabel,
			ResponseDelay: cfg.ResponseDelay,
			Logger:        logger.With("uid", uid.String()),
		}))
	}

	p, err := NewPort(parent, id, responders...)
	if err != nil {
		return nil, err
	}
	p.SetLogger(logger)
	p.SetProtocolLogger(cfg.ProtocolLogger)
	return p, nil
}

// NewPort creates a port serving the given responders. Responder UIDs must
// be unique and must not be broadcast addresses.
func NewPort(parent *Device, id uint, responders ...responder.Responder) (*DummyPort, error) {
	reg, err := newRegistry(responders)
	if err != nil {
		return nil, err
	}
	p := &DummyPort{
		id:        id,
		parent:    parent,
		sessionID: uuid.New().String(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.registry.Store(reg)
	return p, nil
}

// SetLogger sets the operational logger. Must be called before the port
// is used.
func (p *DummyPort) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger.With("port", p.id)
}

// SetProtocolLogger sets the protocol trace logger. Must be called before
// the port is used.
func (p *DummyPort) SetProtocolLogger(logger log.Logger) {
	p.protocolLogger = logger
}

// ID returns the index of the port within its device.
func (p *DummyPort) ID() uint {
	return p.id
}

// Description returns a human readable port description.
func (p *DummyPort) Description() string {
	return DummyPortDescription
}

// Device returns the owning device, which may be nil.
func (p *DummyPort) Device() *Device {
	return p.parent
}

// SessionID returns the identifier stamped on this port's trace events.
func (p *DummyPort) SessionID() string {
	return p.sessionID
}

// UIDs returns the UIDs of every responder on the port.
func (p *DummyPort) UIDs() *rdm.UIDSet {
	return rdm.NewUIDSet(p.registry.Load().order...)
}

// WriteDMX stores a copy of buf as the port's current DMX frame. The
// priority is accepted for interface compatibility and ignored. Always
// returns true.
func (p *DummyPort) WriteDMX(buf []byte, priority uint8) bool {
	p.dmxMu.Lock()
	p.dmx = slices.Clone(buf)
	p.dmxMu.Unlock()

	n := min(int(p.dmxFootprint()), len(buf))
	p.logger.Info("got DMX", "bytes", len(buf), "data", hex.EncodeToString(buf[:n]))

	p.trace(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryDMX,
		DMX: &log.DMXEvent{
			Size:      len(buf),
			Priority:  priority,
			Data:      slices.Clone(buf[:n]),
			Truncated: n < len(buf),
		},
	})
	return true
}

// Buffer returns a copy of the last frame passed to WriteDMX.
func (p *DummyPort) Buffer() []byte {
	p.dmxMu.Lock()
	defer p.dmxMu.Unlock()
	return slices.Clone(p.dmx)
}

// dmxFootprint is the footprint of the lowest UID responder, the number
// of slots worth logging.
func (p *DummyPort) dmxFootprint() uint16 {
	reg := p.registry.Load()
	if len(reg.order) == 0 {
		return 0
	}
	if f, ok := reg.byUID[reg.order[0]].(responder.Footprinter); ok {
		return f.Footprint()
	}
	return 0
}

// SendRDMRequest routes req to the responders it is addressed to.
//
// A broadcast request is handed to every responder in ascending UID order,
// each with the same request and callback, so cb runs once per responder.
// A unicast request is handed to its responder. A request for a UID not on
// this port completes once with StatusUnknownUID and no response.
func (p *DummyPort) SendRDMRequest(req *rdm.Request, cb rdm.Callback) {
	reg := p.registry.Load()
	dst := req.Destination()

	if dst.IsBroadcast() {
		p.traceRequest(req, log.RoutingBroadcast, len(reg.order))
		done := p.traceCompletion(req, cb)
		for _, uid := range reg.order {
			reg.byUID[uid].SendRDMRequest(req, done)
		}
		return
	}

	r, ok := reg.byUID[dst]
	if !ok {
		p.logger.Debug("request for unknown UID", "uid", dst.String(), "pid", req.ParamID().String())
		p.traceRequest(req, log.RoutingUnknownUID, 0)
		p.traceCompletion(req, cb)(rdm.StatusUnknownUID, nil, nil)
		return
	}

	p.traceRequest(req, log.RoutingUnicast, 1)
	r.SendRDMRequest(req, p.traceCompletion(req, cb))
}

// Close closes every responder implementing io.Closer and removes all
// responders from the port. Calling Close more than once is a no-op.
func (p *DummyPort) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	reg := p.registry.Swap(&registry{byUID: map[rdm.UID]responder.Responder{}})

	var errs []error
	for _, uid := range reg.order {
		if c, ok := reg.byUID[uid].(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close responder %s: %w", uid, err))
			}
		}
	}
	p.logger.Debug("port closed", "responders", len(reg.order))
	return errors.Join(errs...)
}

func (p *DummyPort) trace(event log.Event) {
	if p.protocolLogger == nil {
		return
	}
	event.Timestamp = time.Now()
	event.SessionID = p.sessionID
	event.Layer = log.LayerPort
	event.PortID = p.id
	if p.parent != nil {
		event.Device = p.parent.Name()
	}
	p.protocolLogger.Log(event)
}

func (p *DummyPort) traceRequest(req *rdm.Request, routing log.Routing, targets int) {
	if p.protocolLogger == nil {
		return
	}
	p.trace(log.Event{
		Direction: log.DirectionIn,
		Category:  log.CategoryMessage,
		Message:   log.NewRequestMessage(req, routing, targets),
	})
}

// traceCompletion wraps cb so each completion is traced before it is
// delivered. Without a protocol logger cb is returned unchanged.
func (p *DummyPort) traceCompletion(req *rdm.Request, cb rdm.Callback) rdm.Callback {
	if p.protocolLogger == nil {
		return cb
	}
	start := time.Now()
	return func(code rdm.StatusCode, resp *rdm.Response, packets []string) {
		p.trace(log.Event{
			Direction: log.DirectionOut,
			Category:  log.CategoryMessage,
			Message:   log.NewResponseMessage(req, code, resp, time.Since(start)),
		})
		cb(code, resp, packets)
	}
}

var _ Port = (*DummyPort)(nil)
