package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
)

// decodeGlobal reads one global entry: its type and the constant expression
// producing its initial value.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-global
func decodeGlobal(r *reader) (*wasm.Global, error) {
	gt, err := decodeGlobalType(r)
	if err != nil {
		return nil, fmt.Errorf("read global type: %w", err)
	}

	init, err := decodeConstantExpression(r)
	if err != nil {
		return nil, fmt.Errorf("read init expression: %w", err)
	}

	return &wasm.Global{Type: gt, Init: init}, nil
}

// decodeGlobalType reads a value type and the mutability flag, which must be
// 0x00 (const) or 0x01 (var).
//
// See https://www.w3.org/TR/wasm-core-2/#binary-globaltype
func decodeGlobalType(r *reader) (*wasm.GlobalType, error) {
	vt, err := decodeValueType(r)
	if err != nil {
		return nil, fmt.Errorf("read value type: %w", err)
	}

	ret := &wasm.GlobalType{ValType: vt}
	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read mutability: %w", err)
	}

	switch b {
	case 0x00:
	case 0x01:
		ret.Mutable = true
	default:
		return nil, fmt.Errorf("%w: mutability flag: %#x != 0x00 or 0x01", wasm.ErrInvalidByte, b)
	}
	return ret, nil
}

// encodeGlobal returns the wasm.Global in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-global
func encodeGlobal(g *wasm.Global) []byte {
	return append(encodeGlobalType(g.Type), encodeConstantExpression(g.Init)...)
}

// encodeGlobalType returns the wasm.GlobalType in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-globaltype
func encodeGlobalType(gt *wasm.GlobalType) []byte {
	var mut byte
	if gt.Mutable {
		mut = 0x01
	}
	return []byte{gt.ValType, mut}
}
