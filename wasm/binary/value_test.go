package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeValueTypes(t *testing.T) {
	i32, f64 := wasm.ValueTypeI32, wasm.ValueTypeF64

	t.Run("zero count returns nil", func(t *testing.T) {
		vt, err := decodeValueTypes(newReader(nil), 0)
		require.NoError(t, err)
		require.Nil(t, vt)
	})

	t.Run("all tags", func(t *testing.T) {
		input := []byte{
			wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
			wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref,
		}
		vt, err := decodeValueTypes(newReader(input), uint32(len(input)))
		require.NoError(t, err)
		require.Equal(t, input, []byte(vt))
	})

	t.Run("invalid tag", func(t *testing.T) {
		_, err := decodeValueTypes(newReader([]byte{i32, 0x6e, f64}), 3)
		require.ErrorIs(t, err, wasm.ErrInvalidValueType)
	})
}

func TestDecodeName(t *testing.T) {
	r := newReader([]byte{0x06, 'a', 'd', 'd', 'I', 'n', 't', 0xff})
	name, err := decodeName(r)
	require.NoError(t, err)
	require.Equal(t, "addInt", name)
	require.Equal(t, 1, r.len()) // trailing bytes untouched

	// Name bytes are opaque: invalid UTF-8 is not rejected at this layer.
	name, err = decodeName(newReader([]byte{0x02, 0xfe, 0xff}))
	require.NoError(t, err)
	require.Equal(t, "\xfe\xff", name)
}
