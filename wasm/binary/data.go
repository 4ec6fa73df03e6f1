package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeDataSegment reads one data segment: a memory index, the offset
// expression and the size-prefixed initialization bytes.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-data
func decodeDataSegment(r *reader) (*wasm.DataSegment, error) {
	mi, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get memory index: %w", err)
	}

	expr, err := decodeConstantExpression(r)
	if err != nil {
		return nil, fmt.Errorf("read expr for offset: %w", err)
	}

	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	init, err := r.readBytes(vs)
	if err != nil {
		return nil, fmt.Errorf("read init of data segment: %w", err)
	}

	return &wasm.DataSegment{
		MemoryIndex: mi,
		OffsetExpr:  expr,
		Init:        init,
	}, nil
}

// encodeDataSegment returns the wasm.DataSegment in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-data
func encodeDataSegment(s *wasm.DataSegment) []byte {
	data := leb128.EncodeUint32(s.MemoryIndex)
	data = append(data, encodeConstantExpression(s.OffsetExpr)...)
	data = append(data, encodeSizePrefixed(s.Init)...)
	return data
}
