// Package log provides structured protocol tracing for RDM ports.
//
// Protocol tracing is separate from operational logging (slog). It records
// every request a port routes, every completion it observes, each discovery
// run and each DMX write as a machine-readable event stream.
//
// # Basic Usage
//
// Ports accept any Logger through their configuration:
//
//	// Development: trace to the console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// Capture: append CBOR events to a file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/rdm/port.rlog")
//
//	// Both
//	cfg.ProtocolLogger = log.NewMultiLogger(console, file)
//
// # Event Types
//
//   - Message: an RDM request entering a port or a completion leaving it
//   - Discovery: the UID set reported by a discovery run
//   - DMX: a DMX512 frame written to a port
//   - Error: anything a port could not route
//
// # File Format
//
// Trace files are a concatenation of CBOR-encoded events with integer keys,
// conventionally named *.rlog. The rdm-log tool views, filters and exports
// them.
package log
