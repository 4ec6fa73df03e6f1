package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeTable(t *testing.T) {
	max := uint32(20)

	for _, tt := range []struct {
		name  string
		input *wasm.Table // round trip test!
	}{
		{
			name:  "funcref",
			input: &wasm.Table{ElemType: wasm.ValueTypeFuncref, Limits: &wasm.Limits{Min: 1}},
		},
		{
			name:  "externref with max",
			input: &wasm.Table{ElemType: wasm.ValueTypeExternref, Limits: &wasm.Limits{Min: 10, Max: &max}},
		},
	} {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			table, err := decodeTable(newReader(encodeTable(tc.input)))
			require.NoError(t, err)
			require.Equal(t, tc.input, table)
		})
	}
}

func TestDecodeTable_InvalidElemType(t *testing.T) {
	_, err := decodeTable(newReader([]byte{wasm.ValueTypeI32, 0x00, 0x01}))
	require.ErrorIs(t, err, wasm.ErrInvalidValueType)
	require.EqualError(t, err, "invalid value type: table element type: 0x7f")
}
