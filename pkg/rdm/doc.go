// Package rdm defines the RDM (ANSI E1.20) message model used by the
// command-processing core.
//
// RDM nodes are addressed by a 48-bit UID made of a 16-bit manufacturer
// (ESTA) code and a 32-bit device number. Requests carry a command class
// (GET, SET or DISCOVER), a parameter ID (PID) and up to 231 bytes of
// parameter data. Responses reverse the addressing of the request they
// answer and copy its transaction number.
//
// # Broadcast
//
// A UID whose device segment is all ones never names a real responder:
//
//	ffff:ffffffff  all devices of all manufacturers
//	7a70:ffffffff  all devices of manufacturer 0x7a70 (vendorcast)
//
// # Value codec
//
// Parameter data for integer PIDs is big-endian. Extract and Serialize
// convert between the wire form and host integers with strict length
// checks:
//
//	addr, err := rdm.Extract[uint16](req)
//	if err != nil {
//	    // errors.Is(err, rdm.ErrFormat)
//	}
//	data := rdm.Serialize(addr)
//
// # Completion
//
// Requests complete through a Callback which may run before SendRDMRequest
// returns or later from another goroutine. NewResultChannel adapts a
// Callback to a channel for callers that want to wait.
package rdm
