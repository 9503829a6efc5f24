package responder

import (
	"encoding/binary"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Dummy responder identity.
const (
	DummyModelID         uint16 = 1
	DummySoftwareVersion uint32 = 1
	DummyManufacturer           = "Open Lighting Project"
	DummyModel                  = "Dummy Model"
	DummySoftwareLabel          = "Dummy Software Version"
	DefaultDeviceLabel          = "Dummy RDM Device"

	// MaxLabelLength is the longest label a responder accepts.
	MaxLabelLength = 32

	// MaxDMXAddress is the highest DMX start address.
	MaxDMXAddress uint16 = 512
)

// DummyConfig configures a DummyResponder.
type DummyConfig struct {
	// Personality is the initial personality, 1-based (default: 1).
	Personality uint8

	// StartAddress is the initial DMX start address (default: 1).
	StartAddress uint16

	// DeviceLabel is the initial DEVICE_LABEL (default: DefaultDeviceLabel).
	DeviceLabel string

	// ResponseDelay defers every completion by this duration when non-zero.
	ResponseDelay time.Duration

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DummyResponder is a simulated RDM fixture that keeps its state in memory.
// It is safe for concurrent use.
type DummyResponder struct {
	uid           rdm.UID
	personalities []Personality
	delay         time.Duration
	logger        *slog.Logger

	mu           sync.RWMutex
	personality  uint8
	startAddress uint16
	identify     bool
	deviceLabel  string
	deviceHours  uint32
	lampHours    uint32
	lampStrikes  uint32
	closed       bool
}

// NewDummyResponder creates a simulated responder with the given UID.
func NewDummyResponder(uid rdm.UID, cfg DummyConfig) *DummyResponder {
	d := &DummyResponder{
		uid:           uid,
		personalities: DefaultPersonalities,
		delay:         cfg.ResponseDelay,
		logger:        cfg.Logger,
		personality:   cfg.Personality,
		startAddress:  cfg.StartAddress,
		deviceLabel:   cfg.DeviceLabel,
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.personality == 0 || int(d.personality) > len(d.personalities) {
		d.personality = 1
	}
	if d.startAddress == 0 || d.startAddress > MaxDMXAddress {
		d.startAddress = 1
	}
	if d.deviceLabel == "" {
		d.deviceLabel = DefaultDeviceLabel
	}
	if len(d.deviceLabel) > MaxLabelLength {
		d.deviceLabel = d.deviceLabel[:MaxLabelLength]
	}
	return d
}

// UID returns the responder's UID.
func (d *DummyResponder) UID() rdm.UID {
	return d.uid
}

// Footprint returns the DMX footprint of the current personality.
func (d *DummyResponder) Footprint() uint16 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.personalities[d.personality-1].Footprint
}

// StartAddress returns the current DMX start address.
func (d *DummyResponder) StartAddress() uint16 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.startAddress
}

// Identify returns the identify state.
func (d *DummyResponder) Identify() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.identify
}

// DeviceLabel returns the current device label.
func (d *DummyResponder) DeviceLabel() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.deviceLabel
}

// Close stops the responder. Later requests fail with StatusFailedToSend.
// It is safe to call Close multiple times.
func (d *DummyResponder) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// SendRDMRequest handles a request and completes it through cb.
func (d *DummyResponder) SendRDMRequest(req *rdm.Request, cb rdm.Callback) {
	code, resp := d.handle(req)
	if d.delay > 0 {
		time.AfterFunc(d.delay, func() { cb(code, resp, nil) })
		return
	}
	cb(code, resp, nil)
}

func (d *DummyResponder) handle(req *rdm.Request) (rdm.StatusCode, *rdm.Response) {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return rdm.StatusFailedToSend, nil
	}

	if !req.Destination().DirectedToUID(d.uid) {
		d.logger.Debug("request not addressed to responder",
			"uid", d.uid.String(), "destination", req.Destination().String())
		return rdm.StatusTimeout, nil
	}
	if req.CommandClass() == rdm.CommandClassDiscover {
		return rdm.StatusDiscoveryNotSupported, nil
	}

	resp := d.process(req)
	if req.Destination().IsBroadcast() {
		return rdm.StatusWasBroadcast, nil
	}
	d.logger.Debug("rdm response",
		"uid", d.uid.String(), "pid", req.ParamID().String(),
		"type", resp.ResponseType.String())
	return rdm.StatusCompletedOK, resp
}

func (d *DummyResponder) process(req *rdm.Request) *rdm.Response {
	sub := req.SubDevice()
	if sub != rdm.RootDevice && !(req.CommandClass() == rdm.CommandClassSet && sub == rdm.AllSubDevices) {
		return rdm.NackWithReason(req, rdm.NackSubDeviceOutOfRange, 0)
	}

	h, ok := dummyHandlers[req.ParamID()]
	if !ok {
		return rdm.NackWithReason(req, rdm.NackUnknownPID, 0)
	}
	switch req.CommandClass() {
	case rdm.CommandClassGet:
		if h.get != nil {
			d.mu.RLock()
			defer d.mu.RUnlock()
			return h.get(d, req)
		}
	case rdm.CommandClassSet:
		if h.set != nil {
			d.mu.Lock()
			defer d.mu.Unlock()
			return h.set(d, req)
		}
	}
	return rdm.NackWithReason(req, rdm.NackUnsupportedCommandClass, 0)
}

// paramHandler serves one PID. Handlers run with d.mu held: read-locked
// for get, write-locked for set.
type paramHandler struct {
	get func(d *DummyResponder, req *rdm.Request) *rdm.Response
	set func(d *DummyResponder, req *rdm.Request) *rdm.Response
}

var dummyHandlers map[rdm.PID]paramHandler

func init() {
	dummyHandlers = map[rdm.PID]paramHandler{
		rdm.PIDSupportedParameters:       {get: (*DummyResponder).getSupportedParameters},
		rdm.PIDDeviceInfo:                {get: (*DummyResponder).getDeviceInfo},
		rdm.PIDProductDetailIDList:       {get: (*DummyResponder).getProductDetailList},
		rdm.PIDDeviceModelDescription:    {get: constString(DummyModel)},
		rdm.PIDManufacturerLabel:         {get: constString(DummyManufacturer)},
		rdm.PIDDeviceLabel:               {get: (*DummyResponder).getDeviceLabel, set: (*DummyResponder).setDeviceLabel},
		rdm.PIDSoftwareVersionLabel:      {get: constString(DummySoftwareLabel)},
		rdm.PIDDMXPersonality:            {get: (*DummyResponder).getPersonality, set: (*DummyResponder).setPersonality},
		rdm.PIDDMXPersonalityDescription: {get: (*DummyResponder).getPersonalityDescription},
		rdm.PIDDMXStartAddress:           {get: (*DummyResponder).getStartAddress, set: (*DummyResponder).setStartAddress},
		rdm.PIDDeviceHours: {
			get: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return GetUInt32Value(req, d.deviceHours) },
			set: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return SetUInt32Value(req, &d.deviceHours) },
		},
		rdm.PIDLampHours: {
			get: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return GetUInt32Value(req, d.lampHours) },
			set: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return SetUInt32Value(req, &d.lampHours) },
		},
		rdm.PIDLampStrikes: {
			get: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return GetUInt32Value(req, d.lampStrikes) },
			set: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return SetUInt32Value(req, &d.lampStrikes) },
		},
		rdm.PIDRealTimeClock: {
			get: func(_ *DummyResponder, req *rdm.Request) *rdm.Response { return GetRealTimeClock(req) },
		},
		rdm.PIDIdentifyDevice: {
			get: func(d *DummyResponder, req *rdm.Request) *rdm.Response { return GetBoolValue(req, d.identify, 0) },
			set: (*DummyResponder).setIdentify,
		},
	}
}

// requiredPIDs are mandatory for every responder and therefore not listed
// in SUPPORTED_PARAMETERS.
var requiredPIDs = map[rdm.PID]bool{
	rdm.PIDSupportedParameters:  true,
	rdm.PIDParameterDescription: true,
	rdm.PIDDeviceInfo:           true,
	rdm.PIDSoftwareVersionLabel: true,
	rdm.PIDDMXStartAddress:      true,
	rdm.PIDIdentifyDevice:       true,
}

func constString(s string) func(*DummyResponder, *rdm.Request) *rdm.Response {
	return func(_ *DummyResponder, req *rdm.Request) *rdm.Response {
		return GetString(req, s, 0)
	}
}

func (d *DummyResponder) getSupportedParameters(req *rdm.Request) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	pids := SupportedParameters()
	data := make([]byte, 0, 2*len(pids))
	for _, pid := range pids {
		data = binary.BigEndian.AppendUint16(data, uint16(pid))
	}
	return rdm.GetResponseFromData(req, data, rdm.ResponseTypeAck, 0)
}

func (d *DummyResponder) getDeviceInfo(req *rdm.Request) *rdm.Response {
	return GetDeviceInfo(req, DeviceInfo{
		ModelID:            DummyModelID,
		ProductCategory:    rdm.ProductCategoryOther,
		SoftwareVersion:    DummySoftwareVersion,
		Footprint:          d.personalities[d.personality-1].Footprint,
		CurrentPersonality: d.personality,
		PersonalityCount:   uint8(len(d.personalities)),
		StartAddress:       d.startAddress,
		SubDeviceCount:     0,
		SensorCount:        0,
	}, 0)
}

func (d *DummyResponder) getProductDetailList(req *rdm.Request) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	return rdm.GetResponseFromData(req, rdm.Serialize(uint16(rdm.ProductDetailTest)), rdm.ResponseTypeAck, 0)
}

func (d *DummyResponder) getDeviceLabel(req *rdm.Request) *rdm.Response {
	return GetString(req, d.deviceLabel, 0)
}

func (d *DummyResponder) setDeviceLabel(req *rdm.Request) *rdm.Response {
	if req.ParamDataSize() > MaxLabelLength {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	d.deviceLabel = string(req.ParamData())
	return rdm.NewAckNoData(req, 0)
}

func (d *DummyResponder) getPersonality(req *rdm.Request) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	data := []byte{d.personality, uint8(len(d.personalities))}
	return rdm.GetResponseFromData(req, data, rdm.ResponseTypeAck, 0)
}

func (d *DummyResponder) setPersonality(req *rdm.Request) *rdm.Response {
	personality, err := rdm.ExtractUInt8(req)
	if err != nil {
		return rdm.NackWithReason(req, rdm.NackReasonFor(err), 0)
	}
	if personality == 0 || int(personality) > len(d.personalities) {
		return rdm.NackWithReason(req, rdm.NackDataOutOfRange, 0)
	}
	d.personality = personality
	return rdm.NewAckNoData(req, 0)
}

func (d *DummyResponder) getPersonalityDescription(req *rdm.Request) *rdm.Response {
	index, err := rdm.ExtractUInt8(req)
	if err != nil {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	if index == 0 || int(index) > len(d.personalities) {
		return rdm.NackWithReason(req, rdm.NackDataOutOfRange, 0)
	}
	p := d.personalities[index-1]
	data := []byte{index}
	data = binary.BigEndian.AppendUint16(data, p.Footprint)
	data = append(data, p.Description...)
	return rdm.GetResponseFromData(req, data, rdm.ResponseTypeAck, 0)
}

func (d *DummyResponder) getStartAddress(req *rdm.Request) *rdm.Response {
	address := d.startAddress
	if d.personalities[d.personality-1].Footprint == 0 {
		address = 0xFFFF
	}
	return GetUInt16Value(req, address)
}

func (d *DummyResponder) setStartAddress(req *rdm.Request) *rdm.Response {
	var address uint16
	resp := SetUInt16Value(req, &address)
	if !resp.IsAck() {
		return resp
	}
	if address == 0 || address > MaxDMXAddress {
		return rdm.NackWithReason(req, rdm.NackDataOutOfRange, 0)
	}
	d.startAddress = address
	return resp
}

func (d *DummyResponder) setIdentify(req *rdm.Request) *rdm.Response {
	old := d.identify
	resp := SetBoolValue(req, &d.identify, 0)
	if d.identify != old {
		d.logger.Info("identify changed", "uid", d.uid.String(), "identify", d.identify)
	}
	return resp
}

// SupportedParameters returns the optional PIDs served by DummyResponder,
// in ascending order.
func SupportedParameters() []rdm.PID {
	pids := make([]rdm.PID, 0, len(dummyHandlers))
	for pid := range dummyHandlers {
		if !requiredPIDs[pid] {
			pids = append(pids, pid)
		}
	}
	slices.Sort(pids)
	return pids
}

// Compile-time interface satisfaction checks.
var (
	_ Responder   = (*DummyResponder)(nil)
	_ Footprinter = (*DummyResponder)(nil)
	_ io.Closer   = (*DummyResponder)(nil)
)
