package rdm

// Callback receives the outcome of a request. resp is nil unless code is
// StatusCompletedOK. packets holds raw frames captured by the transport,
// if any. A Callback runs once per request, except for broadcast fan-out
// where every addressed responder completes independently.
type Callback func(code StatusCode, resp *Response, packets []string)

// DiscoveryCallback receives the UIDs found by a discovery run.
type DiscoveryCallback func(uids *UIDSet)

// Result is one invocation of a Callback.
type Result struct {
	Code     StatusCode
	Response *Response
	Packets  []string
}

// NewResultChannel returns a Callback that forwards each result to a
// buffered channel of the given capacity. Use capacity 1 for unicast and
// the responder count for broadcast; a full channel drops further results.
func NewResultChannel(capacity int) (Callback, <-chan Result) {
	if capacity < 1 {
		capacity = 1
	}
	ch := make(chan Result, capacity)
	cb := func(code StatusCode, resp *Response, packets []string) {
		select {
		case ch <- Result{Code: code, Response: resp, Packets: packets}:
		default:
		}
	}
	return cb, ch
}
