package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeTag reads one tag entry, as in the exception handling proposal.
func decodeTag(r *reader) (*wasm.Tag, error) {
	typeIndex, err := decodeTagDesc(r)
	if err != nil {
		return nil, err
	}
	return &wasm.Tag{TypeIndex: typeIndex}, nil
}

// decodeTagDesc reads the attribute byte, which is always zero, and the type
// index naming the tag's signature.
func decodeTagDesc(r *reader) (wasm.Index, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, fmt.Errorf("read tag attribute: %w", err)
	}
	if b != 0 {
		return 0, fmt.Errorf("%w: tag attribute: %#x", wasm.ErrInvalidByte, b)
	}

	typeIndex, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("read tag type index: %w", err)
	}
	return typeIndex, nil
}

// encodeTag returns the wasm.Tag in the binary format.
func encodeTag(t *wasm.Tag) []byte {
	return append([]byte{0x00}, leb128.EncodeUint32(t.TypeIndex)...)
}
