package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeElementSegment reads one element segment: a table index, the offset
// expression and the vector of function indices.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-elem
func decodeElementSegment(r *reader) (*wasm.ElementSegment, error) {
	ti, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get table index: %w", err)
	}

	expr, err := decodeConstantExpression(r)
	if err != nil {
		return nil, fmt.Errorf("read expr for offset: %w", err)
	}

	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	var init []wasm.Index
	if vs > 0 {
		init = make([]wasm.Index, vs)
		for i := range init {
			if init[i], _, err = leb128.DecodeUint32(r); err != nil {
				return nil, fmt.Errorf("read function index: %w", err)
			}
		}
	}

	return &wasm.ElementSegment{
		TableIndex: ti,
		OffsetExpr: expr,
		Init:       init,
	}, nil
}

// encodeElementSegment returns the wasm.ElementSegment in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-elem
func encodeElementSegment(s *wasm.ElementSegment) []byte {
	data := leb128.EncodeUint32(s.TableIndex)
	data = append(data, encodeConstantExpression(s.OffsetExpr)...)
	data = append(data, leb128.EncodeUint32(uint32(len(s.Init)))...)
	for _, idx := range s.Init {
		data = append(data, leb128.EncodeUint32(idx)...)
	}
	return data
}
