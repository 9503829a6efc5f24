package port

import (
	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Discoverable is implemented by ports that can discover responders.
type Discoverable interface {
	// RunFullDiscovery reports every responder on the port through cb.
	RunFullDiscovery(cb rdm.DiscoveryCallback)

	// RunIncrementalDiscovery reports responders added or removed since
	// the previous run. Implementations that track nothing report the
	// full set.
	RunIncrementalDiscovery(cb rdm.DiscoveryCallback)
}

// RunFullDiscovery calls cb once, before returning, with every UID on the
// port.
func (p *DummyPort) RunFullDiscovery(cb rdm.DiscoveryCallback) {
	p.runDiscovery(log.DiscoveryFull, cb)
}

// RunIncrementalDiscovery behaves exactly like RunFullDiscovery; the
// responder population never changes after construction.
func (p *DummyPort) RunIncrementalDiscovery(cb rdm.DiscoveryCallback) {
	p.runDiscovery(log.DiscoveryIncremental, cb)
}

func (p *DummyPort) runDiscovery(mode log.DiscoveryMode, cb rdm.DiscoveryCallback) {
	uids := p.UIDs()
	p.logger.Debug("discovery complete", "mode", mode.String(), "uids", uids.Len())
	p.trace(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryDiscovery,
		Discovery: &log.DiscoveryEvent{Mode: mode, UIDs: uids.UIDs()},
	})
	cb(uids)
}
