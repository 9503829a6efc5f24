package responder

import (
	"time"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// GetDeviceInfo answers a DEVICE_INFO GET with the 19-byte record for info.
func GetDeviceInfo(req *rdm.Request, info DeviceInfo, queuedMessageCount uint8) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, queuedMessageCount)
	}
	data, _ := info.MarshalBinary()
	return rdm.GetResponseFromData(req, data, rdm.ResponseTypeAck, queuedMessageCount)
}

// GetRealTimeClock answers a REAL_TIME_CLOCK GET with the current local time.
func GetRealTimeClock(req *rdm.Request) *rdm.Response {
	return getRealTimeClockAt(req, time.Now())
}

func getRealTimeClockAt(req *rdm.Request, now time.Time) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	data, _ := ClockFromTime(now).MarshalBinary()
	return rdm.GetResponseFromData(req, data, rdm.ResponseTypeAck, 0)
}

// GetString answers a GET with the raw bytes of value. No terminator or
// length prefix is added.
func GetString(req *rdm.Request, value string, queuedMessageCount uint8) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, queuedMessageCount)
	}
	return rdm.GetResponseFromData(req, []byte(value), rdm.ResponseTypeAck, queuedMessageCount)
}

// GetBoolValue answers a GET with a single byte, 1 or 0.
func GetBoolValue(req *rdm.Request, value bool, queuedMessageCount uint8) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, queuedMessageCount)
	}
	var param uint8
	if value {
		param = 1
	}
	return rdm.GetResponseFromData(req, []byte{param}, rdm.ResponseTypeAck, queuedMessageCount)
}

// SetBoolValue applies a one-byte boolean SET to value. Only 0 and 1 are
// accepted; value is left untouched on any NACK.
func SetBoolValue(req *rdm.Request, value *bool, queuedMessageCount uint8) *rdm.Response {
	arg, err := rdm.ExtractUInt8(req)
	if err != nil {
		return rdm.NackWithReason(req, rdm.NackFormatError, queuedMessageCount)
	}
	if arg > 1 {
		return rdm.NackWithReason(req, rdm.NackDataOutOfRange, queuedMessageCount)
	}
	*value = arg == 1
	return rdm.NewAckNoData(req, queuedMessageCount)
}

// GetUIntValue answers a GET with value in network byte order.
// The queued message count is always 0.
func GetUIntValue[T rdm.UInt](req *rdm.Request, value T) *rdm.Response {
	if req.ParamDataSize() != 0 {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	return rdm.GetResponseFromData(req, rdm.Serialize(value), rdm.ResponseTypeAck, 0)
}

// SetUIntValue decodes a SET of the width of T into value. value is only
// written when the data length matches. The queued message count is always 0.
func SetUIntValue[T rdm.UInt](req *rdm.Request, value *T) *rdm.Response {
	decoded, err := rdm.Extract[T](req)
	if err != nil {
		return rdm.NackWithReason(req, rdm.NackFormatError, 0)
	}
	*value = decoded
	return rdm.NewAckNoData(req, 0)
}

func GetUInt8Value(req *rdm.Request, value uint8) *rdm.Response { return GetUIntValue(req, value) }
func GetUInt16Value(req *rdm.Request, value uint16) *rdm.Response { return GetUIntValue(req, value) }
func GetUInt32Value(req *rdm.Request, value uint32) *rdm.Response { return GetUIntValue(req, value) }

func SetUInt8Value(req *rdm.Request, value *uint8) *rdm.Response { return SetUIntValue(req, value) }
func SetUInt16Value(req *rdm.Request, value *uint16) *rdm.Response { return SetUIntValue(req, value) }
func SetUInt32Value(req *rdm.Request, value *uint32) *rdm.Response { return SetUIntValue(req, value) }
