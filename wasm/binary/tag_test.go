package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestDecodeTag(t *testing.T) {
	tag, err := decodeTag(newReader([]byte{0x00, 0x80, 0x01}))
	require.NoError(t, err)
	require.Equal(t, &wasm.Tag{TypeIndex: 128}, tag)
}

func TestDecodeTag_InvalidAttribute(t *testing.T) {
	_, err := decodeTag(newReader([]byte{0x01, 0x00}))
	require.ErrorIs(t, err, wasm.ErrInvalidByte)
	require.EqualError(t, err, "invalid byte: tag attribute: 0x1")
}
