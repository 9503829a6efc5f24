package rdm

import (
	"bytes"
	"errors"
	"testing"
)

func testRequest(t *testing.T, cc CommandClass, pid PID, data []byte) *Request {
	t.Helper()
	req, err := NewRequest(RequestHeader{
		Source:            NewUID(0x7a70, 0x100),
		Destination:       NewUID(0x7a70, 0xffffff00),
		TransactionNumber: 7,
		PortID:            1,
	}, cc, pid, data)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	return req
}

func extractWidth(req *Request, width int) ([]byte, error) {
	switch width {
	case 1:
		v, err := ExtractUInt8(req)
		return Serialize(v), err
	case 2:
		v, err := ExtractUInt16(req)
		return Serialize(v), err
	default:
		v, err := ExtractUInt32(req)
		return Serialize(v), err
	}
}

func TestExtractLengthMismatch(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		for n := 0; n <= 6; n++ {
			if n == width {
				continue
			}
			req := testRequest(t, CommandClassSet, PIDDMXStartAddress, make([]byte, n))
			if _, err := extractWidth(req, width); !errors.Is(err, ErrFormat) {
				t.Errorf("width %d, length %d: error = %v, want ErrFormat", width, n, err)
			}
		}
	}
}

func TestExtractSerializeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{0x00},
		{0xff},
		{0x01, 0x02},
		{0xff, 0x00},
		{0xde, 0xad, 0xbe, 0xef},
		{0x00, 0x00, 0x00, 0x01},
	}
	for _, data := range payloads {
		req := testRequest(t, CommandClassSet, PIDLampHours, data)
		got, err := extractWidth(req, len(data))
		if err != nil {
			t.Fatalf("extract %x failed: %v", data, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("round trip %x = %x", data, got)
		}
	}
}

func TestExtractBigEndian(t *testing.T) {
	req := testRequest(t, CommandClassSet, PIDDMXStartAddress, []byte{0x01, 0x02})
	v, err := Extract[uint16](req)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v != 0x0102 {
		t.Errorf("Extract = %#x, want 0x0102", v)
	}

	req = testRequest(t, CommandClassSet, PIDLampHours, []byte{0x01, 0x02, 0x03, 0x04})
	v32, err := Extract[uint32](req)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if v32 != 0x01020304 {
		t.Errorf("Extract = %#x, want 0x01020304", v32)
	}
}

type startAddress uint16

func TestWidthNamedTypes(t *testing.T) {
	if w := Width[uint8](); w != 1 {
		t.Errorf("Width[uint8] = %d", w)
	}
	if w := Width[startAddress](); w != 2 {
		t.Errorf("Width[startAddress] = %d", w)
	}
	if w := Width[uint32](); w != 4 {
		t.Errorf("Width[uint32] = %d", w)
	}
	if got := Serialize(startAddress(512)); !bytes.Equal(got, []byte{0x02, 0x00}) {
		t.Errorf("Serialize(startAddress(512)) = %x", got)
	}
}
