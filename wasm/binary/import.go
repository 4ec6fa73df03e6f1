package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeImport reads one import entry: two size-prefixed names, an extern kind
// tag and the kind-specific descriptor.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-import
func decodeImport(r *reader) (i *wasm.Import, err error) {
	i = &wasm.Import{}
	if i.Module, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("read import module: %w", err)
	}

	if i.Name, err = decodeName(r); err != nil {
		return nil, fmt.Errorf("read import name: %w", err)
	}

	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read import kind: %w", err)
	}

	i.Kind = b
	switch i.Kind {
	case wasm.ExternKindFunc:
		if i.DescFunc, _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("read import func type index: %w", err)
		}
	case wasm.ExternKindTable:
		if i.DescTable, err = decodeTable(r); err != nil {
			return nil, fmt.Errorf("read import table desc: %w", err)
		}
	case wasm.ExternKindMemory:
		if i.DescMem, err = decodeLimits(r); err != nil {
			return nil, fmt.Errorf("read import mem desc: %w", err)
		}
	case wasm.ExternKindGlobal:
		if i.DescGlobal, err = decodeGlobalType(r); err != nil {
			return nil, fmt.Errorf("read import global desc: %w", err)
		}
	case wasm.ExternKindTag:
		if i.DescTag, err = decodeTagDesc(r); err != nil {
			return nil, fmt.Errorf("read import tag desc: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: importdesc: %#x", wasm.ErrInvalidExternKind, b)
	}
	return
}

// encodeImport returns the wasm.Import in the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-import
func encodeImport(i *wasm.Import) []byte {
	data := append(encodeName(i.Module), encodeName(i.Name)...)
	data = append(data, i.Kind)
	switch i.Kind {
	case wasm.ExternKindFunc:
		data = append(data, leb128.EncodeUint32(i.DescFunc)...)
	case wasm.ExternKindTable:
		data = append(data, encodeTable(i.DescTable)...)
	case wasm.ExternKindMemory:
		data = append(data, encodeLimits(i.DescMem)...)
	case wasm.ExternKindGlobal:
		data = append(data, encodeGlobalType(i.DescGlobal)...)
	case wasm.ExternKindTag:
		data = append(data, 0x00)
		data = append(data, leb128.EncodeUint32(i.DescTag)...)
	}
	return data
}
