package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

func TestReader_ReadBytes(t *testing.T) {
	r := newReader([]byte{0x01, 0x02, 0x03})

	b, err := r.readBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, b)
	require.Equal(t, 1, r.len())

	_, err = r.readBytes(2)
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
	// A failed read must not advance the cursor.
	require.Equal(t, 1, r.len())
}

func TestReader_ReadByte(t *testing.T) {
	r := newReader([]byte{0xfe})

	b, err := r.readByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xfe), b)

	_, err = r.readByte()
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
}

func TestReader_ReadUint32(t *testing.T) {
	r := newReader([]byte{0x01, 0x00, 0x00, 0x00})
	v, err := r.readUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)

	_, err = newReader([]byte{0x01, 0x00}).readUint32()
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
}

func TestReader_ReadUntil(t *testing.T) {
	r := newReader([]byte{0x20, 0x00, 0x0b, 0x7f})

	b, err := r.readUntil(0x0b)
	require.NoError(t, err)
	require.Equal(t, []byte{0x20, 0x00}, b)
	// The delimiter itself is consumed.
	require.Equal(t, 1, r.len())

	_, err = r.readUntil(0x0b)
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
}

func TestReader_ReadUntil_DelimiterFirst(t *testing.T) {
	r := newReader([]byte{0x0b})
	b, err := r.readUntil(0x0b)
	require.NoError(t, err)
	require.Empty(t, b)
	require.Zero(t, r.len())
}

func TestReader_Sub(t *testing.T) {
	r := newReader([]byte{0x01, 0x02, 0x03, 0x04})

	sub, err := r.sub(3)
	require.NoError(t, err)
	require.Equal(t, 3, sub.len())
	// The parent cursor skips the whole region.
	require.Equal(t, 1, r.len())

	// The child cannot read past its region.
	_, err = sub.readBytes(4)
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)

	_, err = r.sub(2)
	require.ErrorIs(t, err, wasm.ErrUnexpectedEnd)
}

func TestReader_Rest(t *testing.T) {
	r := newReader([]byte{0x01, 0x02})
	_, err := r.readByte()
	require.NoError(t, err)
	require.Equal(t, []byte{0x02}, r.rest())
	require.Zero(t, r.len())
	require.Empty(t, r.rest())
}
