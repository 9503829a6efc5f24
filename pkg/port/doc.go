// Package port routes RDM requests and DMX frames to the responders
// attached to a port.
//
// A DummyPort owns a fixed set of responders keyed by UID. Requests
// addressed to a single UID go to that responder; broadcast and vendorcast
// requests go to every responder in ascending UID order; requests for an
// unknown UID complete immediately with StatusUnknownUID. Discovery simply
// reports the registered UIDs.
//
// Ports belong to a Device, which closes them together.
package port
