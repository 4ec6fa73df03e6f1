package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeLimits reads a limits pair: flag 0x00 means only a minimum, flag 0x01
// means a minimum followed by a maximum.
//
// See https://www.w3.org/TR/wasm-core-2/#limits%E2%91%A6
func decodeLimits(r *reader) (*wasm.Limits, error) {
	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read leading byte: %w", err)
	}

	ret := &wasm.Limits{}
	switch b {
	case 0x00:
		if ret.Min, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("read min of limit: %w", err)
		}
	case 0x01:
		if ret.Min, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("read min of limit: %w", err)
		}
		max, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read max of limit: %w", err)
		}
		ret.Max = &max
	default:
		return nil, fmt.Errorf("%w: limits flag: %#x != 0x00 or 0x01", wasm.ErrInvalidByte, b)
	}
	return ret, nil
}

// encodeLimits returns the wasm.Limits in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#limits%E2%91%A6
func encodeLimits(l *wasm.Limits) []byte {
	if l.Max == nil {
		return append([]byte{0x00}, leb128.EncodeUint32(l.Min)...)
	}
	data := append([]byte{0x01}, leb128.EncodeUint32(l.Min)...)
	return append(data, leb128.EncodeUint32(*l.Max)...)
}
