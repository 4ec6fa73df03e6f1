package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeFunctionType(t *testing.T) {
	i32, i64 := wasm.ValueTypeI32, wasm.ValueTypeI64

	tests := []struct {
		name     string
		input    []byte
		expected *wasm.FunctionType
	}{
		{
			name:     "empty",
			input:    []byte{0x60, 0x00, 0x00},
			expected: &wasm.FunctionType{},
		},
		{
			name:     "one param no result",
			input:    []byte{0x60, 0x01, i32, 0x00},
			expected: &wasm.FunctionType{Params: []wasm.ValueType{i32}},
		},
		{
			name:     "two params one result",
			input:    []byte{0x60, 0x02, i32, i64, 0x01, i32},
			expected: &wasm.FunctionType{Params: []wasm.ValueType{i32, i64}, Results: []wasm.ValueType{i32}},
		},
		{
			name:     "multi-value",
			input:    []byte{0x60, 0x00, 0x02, i32, i64},
			expected: &wasm.FunctionType{Results: []wasm.ValueType{i32, i64}},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			ft, err := decodeFunctionType(newReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, ft)
		})
	}
}

func TestDecodeFunctionType_Errors(t *testing.T) {
	t.Run("wrong tag", func(t *testing.T) {
		r := newReader([]byte{0x5f, 0x00, 0x00})
		_, err := decodeFunctionType(r)
		require.ErrorIs(t, err, wasm.ErrInvalidFunctionTypeTag)
		require.EqualError(t, err, "invalid function type tag: 0x5f != 0x60")
		// Only the tag byte is consumed on failure.
		require.Equal(t, 1, r.pos)
	})

	t.Run("invalid param type", func(t *testing.T) {
		_, err := decodeFunctionType(newReader([]byte{0x60, 0x01, 0x99, 0x00}))
		require.ErrorIs(t, err, wasm.ErrInvalidValueType)
	})

	t.Run("truncated params", func(t *testing.T) {
		_, err := decodeFunctionType(newReader([]byte{0x60, 0x02, wasm.ValueTypeI32}))
		require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
	})
}
