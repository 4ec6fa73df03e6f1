package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeFunctionType reads one function type entry: the fixed 0x60 tag, then
// the parameter and result vectors. A wrong tag fails before any further byte
// is consumed.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-functype
func decodeFunctionType(r *reader) (*wasm.FunctionType, error) {
	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read leading byte: %w", err)
	}
	if b != 0x60 {
		return nil, fmt.Errorf("%w: %#x != 0x60", wasm.ErrInvalidFunctionTypeTag, b)
	}

	paramCount, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read parameter count: %w", err)
	}

	paramTypes, err := decodeValueTypes(r, paramCount)
	if err != nil {
		return nil, fmt.Errorf("could not read parameter types: %w", err)
	}

	resultCount, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("could not read result count: %w", err)
	}

	resultTypes, err := decodeValueTypes(r, resultCount)
	if err != nil {
		return nil, fmt.Errorf("could not read result types: %w", err)
	}

	return &wasm.FunctionType{
		Params:  paramTypes,
		Results: resultTypes,
	}, nil
}

// encodeFunctionType returns the wasm.FunctionType in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-functype
func encodeFunctionType(t *wasm.FunctionType) []byte {
	data := append([]byte{0x60}, encodeValueTypes(t.Params)...)
	return append(data, encodeValueTypes(t.Results)...)
}
