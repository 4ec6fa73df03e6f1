package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeImport(t *testing.T) {
	max := uint32(10)

	tests := []struct {
		name  string
		input *wasm.Import // round trip test!
	}{
		{
			name: "func",
			input: &wasm.Import{
				Module: "Math", Name: "Mul",
				Kind:     wasm.ExternKindFunc,
				DescFunc: 2,
			},
		},
		{
			name: "table",
			input: &wasm.Import{
				Module: "js", Name: "table",
				Kind:      wasm.ExternKindTable,
				DescTable: &wasm.Table{ElemType: wasm.ValueTypeFuncref, Limits: &wasm.Limits{Min: 1, Max: &max}},
			},
		},
		{
			name: "memory",
			input: &wasm.Import{
				Module: "env", Name: "memory",
				Kind:    wasm.ExternKindMemory,
				DescMem: &wasm.Limits{Min: 1},
			},
		},
		{
			name: "global",
			input: &wasm.Import{
				Module: "env", Name: "__heap_base",
				Kind:       wasm.ExternKindGlobal,
				DescGlobal: &wasm.GlobalType{ValType: wasm.ValueTypeI32, Mutable: true},
			},
		},
		{
			name: "tag",
			input: &wasm.Import{
				Module: "env", Name: "exn",
				Kind:    wasm.ExternKindTag,
				DescTag: 3,
			},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			i, err := decodeImport(newReader(encodeImport(tc.input)))
			require.NoError(t, err)
			require.Equal(t, tc.input, i)
		})
	}
}

func TestDecodeImport_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "invalid kind",
			input:       []byte{0x01, 'a', 0x01, 'b', 0x06, 0x00},
			expectedErr: "invalid extern kind: importdesc: 0x6",
		},
		{
			name:        "module name truncated",
			input:       []byte{0x04, 'a'},
			expectedErr: "read import module: read bytes of name: unexpected end of binary",
		},
		{
			name:        "missing descriptor",
			input:       []byte{0x01, 'a', 0x01, 'b', wasm.ExternKindFunc},
			expectedErr: "read import func type index: readByte failed: unexpected end of binary",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeImport(newReader(tc.input))
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}
