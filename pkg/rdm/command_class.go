package rdm

// CommandClass is the intent of an RDM message.
type CommandClass uint8

const (
	// CommandClassDiscover is used for discovery (DUB, mute, un-mute).
	CommandClassDiscover CommandClass = 0x10

	// CommandClassDiscoverResponse answers a discovery command.
	CommandClassDiscoverResponse CommandClass = 0x11

	// CommandClassGet queries a parameter.
	CommandClassGet CommandClass = 0x20

	// CommandClassGetResponse answers a GET.
	CommandClassGetResponse CommandClass = 0x21

	// CommandClassSet changes a parameter.
	CommandClassSet CommandClass = 0x30

	// CommandClassSetResponse answers a SET.
	CommandClassSetResponse CommandClass = 0x31
)

// String returns the command class name.
func (c CommandClass) String() string {
	switch c {
	case CommandClassDiscover:
		return "DISCOVER"
	case CommandClassDiscoverResponse:
		return "DISCOVER_RESPONSE"
	case CommandClassGet:
		return "GET"
	case CommandClassGetResponse:
		return "GET_RESPONSE"
	case CommandClassSet:
		return "SET"
	case CommandClassSetResponse:
		return "SET_RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// IsRequest returns true for the classes a controller sends.
func (c CommandClass) IsRequest() bool {
	return c == CommandClassDiscover || c == CommandClassGet || c == CommandClassSet
}

// ResponseClass returns the class a responder uses to answer c.
// Response classes map to themselves.
func (c CommandClass) ResponseClass() CommandClass {
	if c.IsRequest() {
		return c + 1
	}
	return c
}
