package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// FilterOptions holds the textual filter flags shared by every command.
type FilterOptions struct {
	Session   string
	Port      string
	UID       string
	PID       string
	Layer     string
	Direction string
	Category  string
	TimeStart string
	TimeEnd   string
}

// Build converts the options to a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{SessionID: o.Session}

	if o.Port != "" {
		v, err := strconv.ParseUint(o.Port, 10, 32)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid port: %s", o.Port)
		}
		id := uint(v)
		filter.PortID = &id
	}
	if o.UID != "" {
		uid, err := rdm.ParseUID(o.UID)
		if err != nil {
			return log.Filter{}, err
		}
		filter.UID = &uid
	}
	if o.PID != "" {
		pid, err := rdm.ParsePID(o.PID)
		if err != nil {
			return log.Filter{}, err
		}
		filter.PID = &pid
	}
	if o.Layer != "" {
		l, err := parseLayer(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := parseDirection(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := parseCategory(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// RunFilter copies the events of path matching filter to output.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "port":
		return log.LayerPort, nil
	case "responder":
		return log.LayerResponder, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be port or responder)", s)
	}
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

func parseCategory(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be message, discovery, dmx, or error)", s)
	}
	return c, nil
}
