package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeCode reads one code entry. The declared body size bounds the whole
// entry: the local declaration groups and the instruction bytes are read from
// a child cursor over exactly that many bytes, so a malformed body cannot
// consume adjacent sections.
//
// The instruction range is everything before the first end opcode inside the
// bounded region; the end opcode is consumed but not retained.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-code
func decodeCode(r *reader) (*wasm.Code, error) {
	ss, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get the size of code: %w", err)
	}

	body, err := r.sub(ss)
	if err != nil {
		return nil, fmt.Errorf("read function body: %w", err)
	}

	ls, _, err := leb128.DecodeUint32(body)
	if err != nil {
		return nil, fmt.Errorf("get the size of locals: %w", err)
	}

	var locals []*wasm.Local
	for i := uint32(0); i < ls; i++ {
		n, _, err := leb128.DecodeUint32(body)
		if err != nil {
			return nil, fmt.Errorf("read count of local[%d]: %w", i, err)
		}
		vt, err := decodeValueType(body)
		if err != nil {
			return nil, fmt.Errorf("read type of local[%d]: %w", i, err)
		}
		locals = append(locals, &wasm.Local{Count: n, Type: vt})
	}

	expr, err := body.readUntil(wasm.OpcodeEnd)
	if err != nil {
		return nil, fmt.Errorf("look for the end opcode: %w", err)
	}
	if body.len() != 0 {
		return nil, fmt.Errorf("unexpected %d bytes after the end opcode", body.len())
	}

	return &wasm.Code{Locals: locals, Body: expr}, nil
}

// encodeCode returns the wasm.Code in the binary format, prefixed by the body
// size in bytes.
// See https://www.w3.org/TR/wasm-core-2/#binary-code
func encodeCode(c *wasm.Code) []byte {
	data := leb128.EncodeUint32(uint32(len(c.Locals)))
	for _, l := range c.Locals {
		data = append(data, leb128.EncodeUint32(l.Count)...)
		data = append(data, l.Type)
	}
	data = append(data, c.Body...)
	data = append(data, wasm.OpcodeEnd)
	return encodeSizePrefixed(data)
}
