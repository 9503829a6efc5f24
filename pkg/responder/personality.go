package responder

// Personality is one DMX personality of a responder.
type Personality struct {
	Footprint   uint16
	Description string
}

// DefaultPersonalities are the personalities offered by DummyResponder.
var DefaultPersonalities = []Personality{
	{Footprint: 5, Description: "Personality 1"},
	{Footprint: 10, Description: "Personality 2"},
	{Footprint: 20, Description: "Personality 3"},
	{Footprint: 0, Description: "No DMX"},
}
