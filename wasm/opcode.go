package wasm

// Opcode is the first byte of an instruction in the binary format.
//
// The binary package does not decode instructions; only the opcodes that can
// begin a constant expression, and the end opcode, are named here.
//
// Note: This is a type alias as it is easier to encode and decode in the binary format.
type Opcode = byte

const (
	// OpcodeEnd terminates an expression or a function body.
	OpcodeEnd Opcode = 0x0b

	OpcodeGlobalGet Opcode = 0x23
	OpcodeI32Const  Opcode = 0x41
	OpcodeI64Const  Opcode = 0x42
	OpcodeF32Const  Opcode = 0x43
	OpcodeF64Const  Opcode = 0x44
)
