package log

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

func TestFileLoggerAppendsAndReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port.rlog")

	l, err := NewFileLogger(path)
	require.NoError(t, err)
	l.Log(Event{Timestamp: time.Now(), SessionID: "s1", Category: CategoryDMX, DMX: &DMXEvent{Size: 512}})
	l.Log(Event{Timestamp: time.Now(), SessionID: "s1", Category: CategoryError, Error: &ErrorEventData{Message: "boom"}})
	require.NoError(t, l.Close())

	// Reopening appends.
	l, err = NewFileLogger(path)
	require.NoError(t, err)
	l.Log(Event{Timestamp: time.Now(), SessionID: "s2", Category: CategoryDMX, DMX: &DMXEvent{Size: 3}})
	require.NoError(t, l.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	events := readAll(t, r)
	require.Len(t, events, 3)
	assert.Equal(t, 512, events[0].DMX.Size)
	assert.Equal(t, "boom", events[1].Error.Message)
	assert.Equal(t, "s2", events[2].SessionID)
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	l, err := NewFileLogger(filepath.Join(t.TempDir(), "x.rlog"))
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	// Dropped silently.
	l.Log(Event{SessionID: "late"})
}

func TestFileLoggerConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.rlog")
	l, err := NewFileLogger(path)
	require.NoError(t, err)

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(port uint) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Log(Event{Timestamp: time.Now(), PortID: port, Category: CategoryDMX, DMX: &DMXEvent{Size: i}})
			}
		}(uint(w))
	}
	wg.Wait()
	require.NoError(t, l.Close())

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Len(t, readAll(t, r), writers*perWriter)
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filtered.rlog")
	l, err := NewFileLogger(path)
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	other := rdm.NewUID(0x7a70, 0xffffff01)
	l.Log(Event{Timestamp: base, SessionID: "a", PortID: 0, Category: CategoryMessage,
		Message: &MessageEvent{Source: controller, Destination: fixture, ParamID: rdm.PIDDeviceInfo}})
	l.Log(Event{Timestamp: base.Add(time.Second), SessionID: "a", PortID: 0, Category: CategoryMessage,
		Message: &MessageEvent{Source: controller, Destination: other, ParamID: rdm.PIDDeviceLabel}})
	l.Log(Event{Timestamp: base.Add(2 * time.Second), SessionID: "b", PortID: 1, Category: CategoryDiscovery,
		Discovery: &DiscoveryEvent{UIDs: []rdm.UID{other}}})
	l.Log(Event{Timestamp: base.Add(3 * time.Second), SessionID: "b", PortID: 1, Category: CategoryDMX,
		DMX: &DMXEvent{Size: 1}})
	require.NoError(t, l.Close())

	cat := CategoryMessage
	port := uint(1)
	pid := rdm.PIDDeviceLabel
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"session", Filter{SessionID: "b"}, 2},
		{"category", Filter{Category: &cat}, 2},
		{"port", Filter{PortID: &port}, 2},
		{"pid", Filter{PID: &pid}, 1},
		{"uid in message or discovery", Filter{UID: &other}, 2},
		{"uid as source", Filter{UID: ptrUID(controller)}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			require.NoError(t, err)
			defer r.Close()
			assert.Len(t, readAll(t, r), tt.want)
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.rlog"))
	assert.Error(t, err)
}

func ptrUID(u rdm.UID) *rdm.UID { return &u }
