// Package commands implements the rdm-log subcommands.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
)

// RunView prints the events of path matching filter in readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a header line, the event details and a blank line.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] port %d %-3s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.PortID,
		event.Direction, event.Layer, typeLabel(event))

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Discovery != nil:
		formatDiscoveryDetails(w, event.Discovery)
	case event.DMX != nil:
		formatDMXDetails(w, event.DMX)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}
	fmt.Fprintln(w)
}

func typeLabel(event log.Event) string {
	switch {
	case event.Message != nil:
		return event.Message.Type.String()
	case event.Discovery != nil:
		return "Discovery"
	case event.DMX != nil:
		return "DMX"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatMessageDetails(w io.Writer, m *log.MessageEvent) {
	fmt.Fprintf(w, "  %s -> %s  TN %d  Sub-device %d\n", m.Source, m.Destination, m.TransactionNumber, m.SubDevice)
	fmt.Fprintf(w, "  %s %s\n", m.CommandClass, m.ParamID)

	switch m.Type {
	case log.MessageTypeRequest:
		fmt.Fprintf(w, "  Routing: %s (%d responders)\n", m.Routing, m.Targets)
	case log.MessageTypeResponse:
		if m.Status != nil {
			fmt.Fprintf(w, "  Status: %s\n", m.Status)
		}
		if m.ResponseType != nil {
			fmt.Fprintf(w, "  Response: %s", m.ResponseType)
			if m.NackReason != nil {
				fmt.Fprintf(w, " (%s)", m.NackReason)
			}
			fmt.Fprintln(w)
		}
		if m.ProcessingTime != nil {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*m.ProcessingTime))
		}
	}
	if len(m.ParamData) > 0 {
		fmt.Fprintf(w, "  Data: %s\n", hex.EncodeToString(m.ParamData))
	}
}

func formatDiscoveryDetails(w io.Writer, d *log.DiscoveryEvent) {
	fmt.Fprintf(w, "  Mode: %s\n", d.Mode)
	fmt.Fprintf(w, "  UIDs: %d\n", len(d.UIDs))
	for _, uid := range d.UIDs {
		fmt.Fprintf(w, "    %s\n", uid)
	}
}

func formatDMXDetails(w io.Writer, d *log.DMXEvent) {
	fmt.Fprintf(w, "  Slots: %d  Priority: %d\n", d.Size, d.Priority)
	if len(d.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(d.Data))
		if d.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", e.Layer)
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
