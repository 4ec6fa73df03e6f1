package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeCode(t *testing.T) {
	i32, i64 := wasm.ValueTypeI32, wasm.ValueTypeI64

	tests := []struct {
		name     string
		input    []byte
		expected *wasm.Code
	}{
		{
			name: "no locals",
			input: []byte{
				0x07,                         // 7 bytes of body
				0x00,                         // no locals
				0x20, 0x00, 0x20, 0x01, 0x6a, // local.get 0, local.get 1, i32.add
				0x0b, // end
			},
			expected: &wasm.Code{Body: []byte{0x20, 0x00, 0x20, 0x01, 0x6a}},
		},
		{
			name: "smallest function",
			input: []byte{
				0x02,
				0x00,
				0x0b,
			},
			expected: &wasm.Code{Body: []byte{}},
		},
		{
			name: "local groups",
			input: []byte{
				0x08,
				0x02,      // 2 local groups
				0x02, i32, // 2 x i32
				0x01, i64, // 1 x i64
				0x20, 0x00, // local.get 0
				0x0b,
			},
			expected: &wasm.Code{
				Locals: []*wasm.Local{{Count: 2, Type: i32}, {Count: 1, Type: i64}},
				Body:   []byte{0x20, 0x00},
			},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			code, err := decodeCode(newReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, code)
		})
	}
}

func TestDecodeCode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "size overruns the binary",
			input:       []byte{0x10, 0x00, 0x0b},
			expectedErr: "read function body: unexpected end of binary",
		},
		{
			name:        "missing end opcode",
			input:       []byte{0x03, 0x00, 0x20, 0x00},
			expectedErr: "look for the end opcode: unexpected end of binary",
		},
		{
			name:        "bytes after the end opcode",
			input:       []byte{0x03, 0x00, 0x0b, 0x00},
			expectedErr: "unexpected 1 bytes after the end opcode",
		},
		{
			name:        "invalid local type",
			input:       []byte{0x04, 0x01, 0x01, 0x99, 0x0b},
			expectedErr: "read type of local[0]: invalid value type: 0x99",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeCode(newReader(tc.input))
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}

// TestDecodeCode_Bounded ensures a code entry cannot read past its declared
// size even when more of the binary follows.
func TestDecodeCode_Bounded(t *testing.T) {
	r := newReader([]byte{
		0x02, 0x00, 0x0b, // first entry
		0x02, 0x00, 0x0b, // second entry, must be untouched by the first
	})

	c1, err := decodeCode(r)
	require.NoError(t, err)
	require.Equal(t, []byte{}, c1.Body)
	require.Equal(t, 3, r.pos)

	c2, err := decodeCode(r)
	require.NoError(t, err)
	require.Equal(t, []byte{}, c2.Body)
	require.Zero(t, r.len())
}
