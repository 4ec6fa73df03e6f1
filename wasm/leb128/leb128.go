// Package leb128 decodes and encodes the variable-length integers used
// throughout the WebAssembly Binary Format.
//
// Each byte carries 7 value bits, least significant group first, with the high
// bit set on every byte except the last.
//
// See https://www.w3.org/TR/wasm-core-2/#integers%E2%91%A4
package leb128

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOverflow32 means the encoded value does not fit in 32 bits.
	ErrOverflow32 = errors.New("overflows a 32-bit integer")
	// ErrOverflow64 means the encoded value does not fit in 64 bits.
	ErrOverflow64 = errors.New("overflows a 64-bit integer")
)

// DecodeUint32 reads an unsigned 32-bit integer in LEB128 format, returning
// the value and the count of bytes consumed.
func DecodeUint32(r io.Reader) (ret uint32, num uint64, err error) {
	const (
		uint32Mask  uint32 = 1 << 7
		uint32Mask2        = ^uint32Mask
	)
	for shift := 0; shift < 35; shift += 7 {
		b, err := readByteAsUint32(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		// The fifth byte holds bits 28..31: only its low nibble may be set,
		// and it must not continue.
		if shift == 28 && b > 0xf {
			return 0, 0, ErrOverflow32
		}
		ret |= (b & uint32Mask2) << shift
		if b&uint32Mask == 0 {
			break
		}
	}
	return
}

// DecodeUint64 reads an unsigned 64-bit integer in LEB128 format, returning
// the value and the count of bytes consumed.
func DecodeUint64(r io.Reader) (ret uint64, num uint64, err error) {
	const (
		uint64Mask  uint64 = 1 << 7
		uint64Mask2        = ^uint64Mask
	)
	for shift := 0; shift < 70; shift += 7 {
		b, err := readByteAsUint64(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		// The tenth byte holds only bit 63.
		if shift == 63 && b > 1 {
			return 0, 0, ErrOverflow64
		}
		ret |= (b & uint64Mask2) << shift
		if b&uint64Mask == 0 {
			break
		}
	}
	return
}

// DecodeInt32 reads a signed 32-bit integer in LEB128 format, returning the
// value and the count of bytes consumed.
func DecodeInt32(r io.Reader) (ret int32, num uint64, err error) {
	const (
		int32Mask  int32 = 1 << 7
		int32Mask2       = ^int32Mask
		int32Mask3       = 1 << 6
		int32Mask4       = ^0
	)
	var shift int
	var b int32
	for shift < 35 {
		b, err = readByteAsInt32(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		// Bits 32..34 of the fifth byte must sign-extend bit 31.
		if shift == 28 && (b&0x80 != 0 || (b&0x78 != 0 && b&0x78 != 0x78)) {
			return 0, 0, ErrOverflow32
		}
		ret |= (b & int32Mask2) << shift
		shift += 7
		if b&int32Mask == 0 {
			break
		}
	}

	if shift < 32 && (b&int32Mask3) == int32Mask3 {
		ret |= int32Mask4 << shift
	}
	return
}

// DecodeInt64 reads a signed 64-bit integer in LEB128 format, returning the
// value and the count of bytes consumed.
func DecodeInt64(r io.Reader) (ret int64, num uint64, err error) {
	const (
		int64Mask  int64 = 1 << 7
		int64Mask2       = ^int64Mask
		int64Mask3       = 1 << 6
		int64Mask4       = ^0
	)
	var shift int
	var b int64
	for shift < 70 {
		b, err = readByteAsInt64(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		// The tenth byte holds bit 63 and must sign-extend it: only 0x00 and
		// 0x7f are coherent.
		if shift == 63 && b != 0 && b != 0x7f {
			return 0, 0, ErrOverflow64
		}
		ret |= (b & int64Mask2) << shift
		shift += 7
		if b&int64Mask == 0 {
			break
		}
	}

	if shift < 64 && (b&int64Mask3) == int64Mask3 {
		ret |= int64Mask4 << shift
	}
	return
}

// EncodeUint32 encodes the value into a buffer in LEB128 format.
func EncodeUint32(v uint32) []byte {
	return EncodeUint64(uint64(v))
}

// EncodeUint64 encodes the value into a buffer in LEB128 format.
func EncodeUint64(v uint64) (buf []byte) {
	for {
		c := uint8(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		buf = append(buf, c)
		if c&0x80 == 0 {
			return
		}
	}
}

// EncodeInt32 encodes the signed value into a buffer in LEB128 format.
func EncodeInt32(v int32) []byte {
	return EncodeInt64(int64(v))
}

// EncodeInt64 encodes the signed value into a buffer in LEB128 format.
func EncodeInt64(v int64) (buf []byte) {
	for {
		c := uint8(v & 0x7f)
		s := uint8(v & 0x40)
		v >>= 7
		if (v != -1 || s == 0) && (v != 0 || s != 0) {
			c |= 0x80
		}
		buf = append(buf, c)
		if c&0x80 == 0 {
			return
		}
	}
}

func readByteAsUint32(r io.Reader) (uint32, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return uint32(b[0]), err
}

func readByteAsInt32(r io.Reader) (int32, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return int32(b[0]), err
}

func readByteAsUint64(r io.Reader) (uint64, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return uint64(b[0]), err
}

func readByteAsInt64(r io.Reader) (int64, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return int64(b[0]), err
}
