package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
)

// decodeTable reads one table entry: a reference element type and limits in
// elements.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-table
func decodeTable(r *reader) (*wasm.Table, error) {
	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read element type: %w", err)
	}
	if b != wasm.ValueTypeFuncref && b != wasm.ValueTypeExternref {
		return nil, fmt.Errorf("%w: table element type: %#x", wasm.ErrInvalidValueType, b)
	}

	limits, err := decodeLimits(r)
	if err != nil {
		return nil, fmt.Errorf("read table limits: %w", err)
	}
	return &wasm.Table{ElemType: b, Limits: limits}, nil
}

// encodeTable returns the wasm.Table in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-table
func encodeTable(t *wasm.Table) []byte {
	return append([]byte{t.ElemType}, encodeLimits(t.Limits)...)
}
