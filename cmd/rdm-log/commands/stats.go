package commands

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Stats holds aggregate statistics about a trace.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Requests          map[log.Routing]int
	Statuses          map[rdm.StatusCode]int
	Nacks             map[rdm.NackReason]int
	PIDs              map[rdm.PID]int
	Sessions          map[string]*SessionStats
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one port session.
type SessionStats struct {
	PortID    uint
	Device    string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	DMXFrames int
}

// CollectStats reads every event of path matching filter.
func CollectStats(path string, filter log.Filter) (*Stats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Requests:          make(map[log.Routing]int),
		Statuses:          make(map[rdm.StatusCode]int),
		Nacks:             make(map[rdm.NackReason]int),
		PIDs:              make(map[rdm.PID]int),
		Sessions:          make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{
			PortID:    event.PortID,
			Device:    event.Device,
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}

	switch {
	case event.Message != nil:
		m := event.Message
		if m.Type == log.MessageTypeRequest {
			s.Requests[m.Routing]++
			s.PIDs[m.ParamID]++
		}
		if m.Status != nil {
			s.Statuses[*m.Status]++
		}
		if m.NackReason != nil {
			s.Nacks[*m.NackReason]++
		}
	case event.DMX != nil:
		sess.DMXFrames++
	case event.Error != nil:
		s.Errors++
	}
}

// RunStats prints statistics about the events of path matching filter.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := CollectStats(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== RDM Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range []log.Category{log.CategoryMessage, log.CategoryDiscovery, log.CategoryDMX, log.CategoryError} {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", c.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, d := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if n := stats.EventsByDirection[d]; n > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", d.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Requests) > 0 {
		fmt.Fprintln(w, "Requests by Routing:")
		for _, r := range []log.Routing{log.RoutingUnicast, log.RoutingBroadcast, log.RoutingUnknownUID} {
			if n := stats.Requests[r]; n > 0 {
				fmt.Fprintf(w, "  %-14s %d\n", r.String()+":", n)
			}
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Requests by PID:")
		for _, pid := range sortedKeys(stats.PIDs) {
			fmt.Fprintf(w, "  %-30s %d\n", pid.String()+":", stats.PIDs[pid])
		}
		fmt.Fprintln(w)
	}

	if len(stats.Statuses) > 0 {
		fmt.Fprintln(w, "Completions:")
		for _, code := range sortedKeys(stats.Statuses) {
			fmt.Fprintf(w, "  %-24s %d\n", code.String()+":", stats.Statuses[code])
		}
		for _, reason := range sortedKeys(stats.Nacks) {
			fmt.Fprintf(w, "    NACK %-19s %d\n", reason.String()+":", stats.Nacks[reason])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return stats.Sessions[a].FirstSeen.Compare(stats.Sessions[b].FirstSeen)
	})
	for _, id := range ids {
		sess := stats.Sessions[id]
		duration := sess.LastSeen.Sub(sess.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] port %d: %d events, duration %s\n", shortenSessionID(id), sess.PortID, sess.Events, duration)
		if sess.Device != "" {
			fmt.Fprintf(w, "           Device: %s\n", sess.Device)
		}
		if sess.DMXFrames > 0 {
			fmt.Fprintf(w, "           DMX frames: %d\n", sess.DMXFrames)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func sortedKeys[K ~uint8 | ~uint16, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
