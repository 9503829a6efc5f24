package rdm

// ResponseType is the response type field of an RDM response.
type ResponseType uint8

const (
	// ResponseTypeAck acknowledges the request, optionally with data.
	ResponseTypeAck ResponseType = 0x00

	// ResponseTypeAckTimer asks the controller to retry later.
	ResponseTypeAckTimer ResponseType = 0x01

	// ResponseTypeNackReason rejects the request with a NackReason.
	ResponseTypeNackReason ResponseType = 0x02

	// ResponseTypeAckOverflow signals more data follows in another response.
	ResponseTypeAckOverflow ResponseType = 0x03
)

// String returns the response type name.
func (t ResponseType) String() string {
	switch t {
	case ResponseTypeAck:
		return "ACK"
	case ResponseTypeAckTimer:
		return "ACK_TIMER"
	case ResponseTypeNackReason:
		return "NACK_REASON"
	case ResponseTypeAckOverflow:
		return "ACK_OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// NackReason is the reason code carried by a NACK_REASON response.
type NackReason uint16

const (
	NackUnknownPID              NackReason = 0x0000
	NackFormatError             NackReason = 0x0001
	NackHardwareFault           NackReason = 0x0002
	NackProxyReject             NackReason = 0x0003
	NackWriteProtect            NackReason = 0x0004
	NackUnsupportedCommandClass NackReason = 0x0005
	NackDataOutOfRange          NackReason = 0x0006
	NackBufferFull              NackReason = 0x0007
	NackPacketSizeUnsupported   NackReason = 0x0008
	NackSubDeviceOutOfRange     NackReason = 0x0009
	NackProxyBufferFull         NackReason = 0x000A
)

// String returns the reason name.
func (r NackReason) String() string {
	switch r {
	case NackUnknownPID:
		return "UNKNOWN_PID"
	case NackFormatError:
		return "FORMAT_ERROR"
	case NackHardwareFault:
		return "HARDWARE_FAULT"
	case NackProxyReject:
		return "PROXY_REJECT"
	case NackWriteProtect:
		return "WRITE_PROTECT"
	case NackUnsupportedCommandClass:
		return "UNSUPPORTED_COMMAND_CLASS"
	case NackDataOutOfRange:
		return "DATA_OUT_OF_RANGE"
	case NackBufferFull:
		return "BUFFER_FULL"
	case NackPacketSizeUnsupported:
		return "PACKET_SIZE_UNSUPPORTED"
	case NackSubDeviceOutOfRange:
		return "SUB_DEVICE_OUT_OF_RANGE"
	case NackProxyBufferFull:
		return "PROXY_BUFFER_FULL"
	default:
		return "UNKNOWN"
	}
}
