package rdm

import (
	"encoding/binary"
	"fmt"
)

// UInt is the set of integer widths carried by fixed-size parameters.
type UInt interface {
	~uint8 | ~uint16 | ~uint32
}

// Width returns the wire size of T in bytes.
func Width[T UInt]() int {
	switch uint64(^T(0)) {
	case 0xFF:
		return 1
	case 0xFFFF:
		return 2
	}
	return 4
}

// Extract decodes the request's parameter data as a big-endian T.
// The data length must equal the width of T exactly.
func Extract[T UInt](req *Request) (T, error) {
	return Decode[T](req.paramData())
}

// Decode decodes data as a big-endian T. The data length must equal the
// width of T exactly; there are no partial reads.
func Decode[T UInt](data []byte) (T, error) {
	width := Width[T]()
	if len(data) != width {
		return 0, fmt.Errorf("%w: expected %d bytes, got %d", ErrFormat, width, len(data))
	}
	switch width {
	case 1:
		return T(data[0]), nil
	case 2:
		return T(binary.BigEndian.Uint16(data)), nil
	default:
		return T(binary.BigEndian.Uint32(data)), nil
	}
}

// Serialize encodes v as big-endian bytes of its width.
func Serialize[T UInt](v T) []byte {
	switch Width[T]() {
	case 1:
		return []byte{uint8(v)}
	case 2:
		return binary.BigEndian.AppendUint16(nil, uint16(v))
	default:
		return binary.BigEndian.AppendUint32(nil, uint32(v))
	}
}

// ExtractUInt8 decodes a 1-byte parameter.
func ExtractUInt8(req *Request) (uint8, error) { return Extract[uint8](req) }

// ExtractUInt16 decodes a 2-byte big-endian parameter.
func ExtractUInt16(req *Request) (uint16, error) { return Extract[uint16](req) }

// ExtractUInt32 decodes a 4-byte big-endian parameter.
func ExtractUInt32(req *Request) (uint32, error) { return Extract[uint32](req) }
