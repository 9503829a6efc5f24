package log

// Logger receives protocol trace events.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use
	// and must not block the caller for long; ports call Log inline while
	// routing requests.
	Log(event Event)
}

// NoopLogger discards all events. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
