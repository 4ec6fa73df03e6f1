package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeValueType reads one byte and validates it against the closed set of
// value type tags.
func decodeValueType(r *reader) (wasm.ValueType, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, fmt.Errorf("read value type: %w", err)
	}
	switch vt := wasm.ValueType(b); vt {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return vt, nil
	default:
		return 0, fmt.Errorf("%w: %#x", wasm.ErrInvalidValueType, b)
	}
}

// decodeValueTypes reads num value type tags, validating each.
func decodeValueTypes(r *reader, num uint32) ([]wasm.ValueType, error) {
	if num == 0 {
		return nil, nil
	}
	buf, err := r.readBytes(num)
	if err != nil {
		return nil, err
	}

	ret := make([]wasm.ValueType, num)
	for i, v := range buf {
		switch v {
		case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
			wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
			ret[i] = v
		default:
			return nil, fmt.Errorf("%w: %#x", wasm.ErrInvalidValueType, v)
		}
	}
	return ret, nil
}

// decodeName reads a size-prefixed byte sequence as a string. The bytes are
// opaque at this layer: UTF-8 validity is a validation concern.
func decodeName(r *reader) (string, error) {
	size, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return "", fmt.Errorf("read size of name: %w", err)
	}

	buf, err := r.readBytes(size)
	if err != nil {
		return "", fmt.Errorf("read bytes of name: %w", err)
	}
	return string(buf), nil
}

// encodeName encodes the name prefixed by its size.
func encodeName(name string) []byte {
	return append(leb128.EncodeUint32(uint32(len(name))), name...)
}

// encodeValueTypes encodes the value types prefixed by their count.
func encodeValueTypes(vt []wasm.ValueType) []byte {
	return append(leb128.EncodeUint32(uint32(len(vt))), vt...)
}
