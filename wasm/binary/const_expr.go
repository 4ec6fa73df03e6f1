package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/ieee754"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// decodeConstantExpression reads a single-instruction initializer expression
// and its end opcode. The operand bytes are captured raw in Data; only their
// length is decoded here.
//
// See https://www.w3.org/TR/wasm-core-2/#constant-expressions%E2%91%A0
func decodeConstantExpression(r *reader) (*wasm.ConstantExpression, error) {
	opcode, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("read opcode: %w", err)
	}

	start := r.pos
	switch opcode {
	case wasm.OpcodeI32Const:
		_, _, err = leb128.DecodeInt32(r)
	case wasm.OpcodeI64Const:
		_, _, err = leb128.DecodeInt64(r)
	case wasm.OpcodeF32Const:
		_, err = ieee754.DecodeFloat32(r)
	case wasm.OpcodeF64Const:
		_, err = ieee754.DecodeFloat64(r)
	case wasm.OpcodeGlobalGet:
		_, _, err = leb128.DecodeUint32(r)
	default:
		return nil, fmt.Errorf("%w: constant expression opcode: %#x", wasm.ErrInvalidByte, opcode)
	}
	if err != nil {
		return nil, fmt.Errorf("read operand: %w", err)
	}
	data := r.buf[start:r.pos]

	b, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("look for the end opcode: %w", err)
	}
	if b != wasm.OpcodeEnd {
		return nil, fmt.Errorf("constant expression has not been terminated: %#x", b)
	}

	return &wasm.ConstantExpression{Opcode: opcode, Data: data}, nil
}

// encodeConstantExpression returns the wasm.ConstantExpression in the binary
// format, terminated by the end opcode.
// See https://www.w3.org/TR/wasm-core-2/#constant-expressions%E2%91%A0
func encodeConstantExpression(expr *wasm.ConstantExpression) []byte {
	data := append([]byte{expr.Opcode}, expr.Data...)
	return append(data, wasm.OpcodeEnd)
}
