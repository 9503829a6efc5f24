// Package responder builds RDM responses and provides a simulated responder.
//
// The helper functions validate a request's parameter data and build the
// matching response:
//
//	GET with unexpected data      -> NACK FORMAT_ERROR
//	SET with the wrong data width -> NACK FORMAT_ERROR
//	SET with an invalid value     -> NACK DATA_OUT_OF_RANGE
//	otherwise                     -> ACK (GET: with data, SET: no data)
//
// Fixed-format records (DEVICE_INFO, REAL_TIME_CLOCK) are written field by
// field in network byte order.
//
// # Responders
//
// A Responder owns one UID and completes every request it is handed by
// invoking the callback exactly once, either before SendRDMRequest returns
// or later. DummyResponder is a simulated fixture that answers the common
// E1.20 PIDs from in-memory state.
package responder
