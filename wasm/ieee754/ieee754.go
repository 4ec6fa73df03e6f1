// Package ieee754 reads the fixed-width little-endian floating point values
// embedded in constant expressions.
//
// See https://www.w3.org/TR/wasm-core-2/#floating-point%E2%91%A4
package ieee754

import (
	"encoding/binary"
	"io"
	"math"
)

// DecodeFloat32 reads a 4-byte little-endian IEEE 754 value.
func DecodeFloat32(r io.Reader) (float32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// DecodeFloat64 reads an 8-byte little-endian IEEE 754 value.
func DecodeFloat64(r io.Reader) (float64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// EncodeFloat32 appends the 4-byte little-endian encoding of v.
func EncodeFloat32(v float32) []byte {
	return binary.LittleEndian.AppendUint32(nil, math.Float32bits(v))
}

// EncodeFloat64 appends the 8-byte little-endian encoding of v.
func EncodeFloat64(v float64) []byte {
	return binary.LittleEndian.AppendUint64(nil, math.Float64bits(v))
}
