package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeExport reads one export entry: a size-prefixed name, an extern kind
// tag and an index into the corresponding index space.
//
// Neither name uniqueness nor the index range is checked here; both belong to
// validation.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-export
func decodeExport(r *reader) (e *wasm.Export, err error) {
	e = &wasm.Export{}

	if e.Name, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("read export name: %w", err)
	}

	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read export kind: %w", err)
	}

	e.Kind = b
	switch e.Kind {
	case wasm.ExternKindFunc, wasm.ExternKindTable, wasm.ExternKindMemory, wasm.ExternKindGlobal, wasm.ExternKindTag:
		if e.Index, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("read export index: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: exportdesc: %#x", wasm.ErrInvalidExternKind, b)
	}
	return
}

// encodeExport returns the wasm.Export in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-export
func encodeExport(e *wasm.Export) []byte {
	data := append(encodeName(e.Name), e.Kind)
	return append(data, leb128.EncodeUint32(e.Index)...)
}
