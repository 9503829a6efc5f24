package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as a single "rdm" record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.Uint64("port", uint64(event.PortID)),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}

	switch {
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.String("msg_type", m.Type.String()),
			slog.String("src", m.Source.String()),
			slog.String("dst", m.Destination.String()),
			slog.Uint64("tn", uint64(m.TransactionNumber)),
			slog.String("cc", m.CommandClass.String()),
			slog.String("pid", m.ParamID.String()),
		)
		if m.Type == MessageTypeRequest {
			attrs = append(attrs,
				slog.String("routing", m.Routing.String()),
				slog.Int("targets", m.Targets),
			)
		}
		if m.Status != nil {
			attrs = append(attrs, slog.String("status", m.Status.String()))
		}
		if m.ResponseType != nil {
			attrs = append(attrs, slog.String("response_type", m.ResponseType.String()))
		}
		if m.NackReason != nil {
			attrs = append(attrs, slog.String("nack_reason", m.NackReason.String()))
		}
		if len(m.ParamData) > 0 {
			attrs = append(attrs, slog.String("data", hex.EncodeToString(m.ParamData)))
		}
		if m.ProcessingTime != nil {
			attrs = append(attrs, slog.Duration("processing_time", *m.ProcessingTime))
		}
	case event.Discovery != nil:
		attrs = append(attrs,
			slog.String("mode", event.Discovery.Mode.String()),
			slog.Int("uids", len(event.Discovery.UIDs)),
		)
	case event.DMX != nil:
		attrs = append(attrs,
			slog.Int("slots", event.DMX.Size),
			slog.Uint64("priority", uint64(event.DMX.Priority)),
			slog.String("data", hex.EncodeToString(event.DMX.Data)),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "rdm", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
