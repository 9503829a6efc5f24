package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

func TestDiscoveryReportsRegistry(t *testing.T) {
	for _, count := range []int{1, 2, 17} {
		p := newDummyPort(t, count)
		want := rdm.NewUIDSet(func() []rdm.UID {
			cfg := DefaultConfig()
			cfg.ResponderCount = count
			return cfg.UIDs()
		}()...)

		runs := map[string]func(rdm.DiscoveryCallback){
			"full":        p.RunFullDiscovery,
			"incremental": p.RunIncrementalDiscovery,
		}
		for name, run := range runs {
			calls := 0
			var got *rdm.UIDSet
			run(func(uids *rdm.UIDSet) {
				calls++
				got = uids
			})
			require.Equal(t, 1, calls, "%s discovery with %d responders", name, count)
			assert.True(t, want.Equal(got), "%s: got %s want %s", name, got, want)
		}
	}
}

func TestDiscoveryAfterClose(t *testing.T) {
	p := newDummyPort(t, 3)
	require.NoError(t, p.Close())

	var got *rdm.UIDSet
	p.RunFullDiscovery(func(uids *rdm.UIDSet) { got = uids })
	require.NotNil(t, got)
	assert.Zero(t, got.Len())
}

func TestDiscoveryTrace(t *testing.T) {
	trace := &capturingLogger{}
	cfg := DefaultConfig()
	cfg.ResponderCount = 2
	cfg.ProtocolLogger = trace
	p, err := NewDummyPort(nil, 1, cfg)
	require.NoError(t, err)
	defer p.Close()

	p.RunIncrementalDiscovery(func(*rdm.UIDSet) {})

	events := trace.snapshot()
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Discovery)
	assert.Equal(t, log.CategoryDiscovery, events[0].Category)
	assert.Equal(t, log.DiscoveryIncremental, events[0].Discovery.Mode)
	assert.Equal(t, cfg.UIDs(), events[0].Discovery.UIDs)
}

func TestDummyPortIsDiscoverable(t *testing.T) {
	var d Discoverable = newDummyPort(t, 1)
	assert.NotNil(t, d)
}
