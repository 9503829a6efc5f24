package rdm

// StatusCode is the result passed to a Callback when a request completes.
// It describes what happened to the request, not the response contents.
type StatusCode uint8

const (
	// StatusCompletedOK means a response was received and is attached.
	StatusCompletedOK StatusCode = iota

	// StatusWasBroadcast means the request was broadcast; no response is owed.
	StatusWasBroadcast

	// StatusFailedToSend means the request never reached the bus.
	StatusFailedToSend

	// StatusTimeout means no responder answered.
	StatusTimeout

	// StatusInvalidResponse means a reply arrived but could not be used.
	StatusInvalidResponse

	// StatusUnknownUID means no responder with the destination UID exists on the port.
	StatusUnknownUID

	// StatusDiscoveryNotSupported means the port cannot run discovery.
	StatusDiscoveryNotSupported
)

// String returns the status name.
func (s StatusCode) String() string {
	switch s {
	case StatusCompletedOK:
		return "COMPLETED_OK"
	case StatusWasBroadcast:
		return "WAS_BROADCAST"
	case StatusFailedToSend:
		return "FAILED_TO_SEND"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusInvalidResponse:
		return "INVALID_RESPONSE"
	case StatusUnknownUID:
		return "UNKNOWN_UID"
	case StatusDiscoveryNotSupported:
		return "PLUGIN_DISCOVERY_NOT_SUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if a response is attached.
func (s StatusCode) IsSuccess() bool {
	return s == StatusCompletedOK
}
