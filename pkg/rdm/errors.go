package rdm

import "errors"

// Codec and request errors.
var (
	// ErrFormat means the parameter data length does not match what the
	// operation requires. Reported to the controller as NACK FORMAT_ERROR.
	ErrFormat = errors.New("format error")

	// ErrDataOutOfRange means a decoded value failed a range check.
	// Reported to the controller as NACK DATA_OUT_OF_RANGE.
	ErrDataOutOfRange = errors.New("data out of range")

	ErrParamDataTooLong    = errors.New("parameter data too long")
	ErrInvalidCommandClass = errors.New("invalid command class")
)

// NackReasonFor maps a codec error to the NACK reason sent to the controller.
// Errors that are not codec errors map to HARDWARE_FAULT.
func NackReasonFor(err error) NackReason {
	switch {
	case errors.Is(err, ErrFormat):
		return NackFormatError
	case errors.Is(err, ErrDataOutOfRange):
		return NackDataOutOfRange
	default:
		return NackHardwareFault
	}
}
