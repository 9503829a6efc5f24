package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/port"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

var controllerUID = rdm.NewUID(0x7a70, 0x00000001)

// writeTrace drives a two-responder port and returns the trace path.
// The trace holds, in order: a unicast GET and its completion, a GET for
// an unknown UID and its completion, a full discovery, and one DMX write.
func writeTrace(t *testing.T) (string, *port.DummyPort) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "port.rlog")
	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)

	cfg := port.DefaultConfig()
	cfg.ResponderCount = 2
	cfg.ProtocolLogger = fl
	p, err := port.NewDummyPort(port.NewDevice("bench"), 0, cfg)
	require.NoError(t, err)

	noop := func(rdm.StatusCode, *rdm.Response, []string) {}
	p.SendRDMRequest(get(t, rdm.NewUID(0x7a70, 0xffffff00), rdm.PIDDeviceLabel), noop)
	p.SendRDMRequest(get(t, rdm.NewUID(0x1234, 0x00000001), rdm.PIDDeviceInfo), noop)
	p.RunFullDiscovery(func(*rdm.UIDSet) {})
	p.WriteDMX([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 0)

	require.NoError(t, p.Close())
	require.NoError(t, fl.Close())
	return path, p
}

func get(t *testing.T, dst rdm.UID, pid rdm.PID) *rdm.Request {
	t.Helper()
	req, err := rdm.NewGetRequest(rdm.RequestHeader{Source: controllerUID, Destination: dst}, pid, nil)
	require.NoError(t, err)
	return req
}
