//go:build tools

package tools

// Pins the mock generator used by go:generate in pkg/responder.
// Run: go generate ./pkg/responder
import _ "github.com/vektra/mockery/v2"
