package wasm

import (
	"strings"
)

// Index is an offset into one of a module's index spaces, e.g. Module.TypeSection.
//
// Note: This is a type alias as it is easier to encode and decode in the binary format.
type Index = uint32

// ValueType is the binary encoding of a type such as i32.
// See https://www.w3.org/TR/wasm-core-2/#binary-valtype
//
// Note: This is a type alias as it is easier to encode and decode in the binary format.
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeV128      ValueType = 0x7b
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// ValueTypeName returns the type name of the given ValueType as a string.
// These type names match the names used in the WebAssembly text format.
//
// Note: This returns "unknown", if an undefined ValueType value is passed.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}

// ExternKind classifies the module-level entity an import or export refers to.
// See https://www.w3.org/TR/wasm-core-2/#import-section%E2%91%A0
//
// Note: This is a type alias as it is easier to encode and decode in the binary format.
type ExternKind = byte

const (
	ExternKindFunc   ExternKind = 0x00
	ExternKindTable  ExternKind = 0x01
	ExternKindMemory ExternKind = 0x02
	ExternKindGlobal ExternKind = 0x03
	ExternKindTag    ExternKind = 0x04
)

// ExternKindName returns the canonical name of the externdesc.
// See https://www.w3.org/TR/wasm-core-2/#syntax-exportdesc
func ExternKindName(ek ExternKind) string {
	switch ek {
	case ExternKindFunc:
		return "func"
	case ExternKindTable:
		return "table"
	case ExternKindMemory:
		return "memory"
	case ExternKindGlobal:
		return "global"
	case ExternKindTag:
		return "tag"
	}
	return "unknown"
}

// FunctionType is a possibly empty function signature.
// See https://www.w3.org/TR/wasm-core-2/#function-types%E2%91%A0
type FunctionType struct {
	// Params are the possibly empty sequence of value types accepted by a function with this signature.
	Params []ValueType

	// Results are the possibly empty sequence of value types returned by a function with this signature.
	Results []ValueType
}

// String implements fmt.Stringer, formatting the signature like the WebAssembly text format.
func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ValueTypeName(p))
	}
	sb.WriteString(") -> (")
	for i, r := range t.Results {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ValueTypeName(r))
	}
	sb.WriteString(")")
	return sb.String()
}

// Import is the binary representation of an import indicated by Kind.
// See https://www.w3.org/TR/wasm-core-2/#binary-import
type Import struct {
	// Module is the possibly empty primary namespace of this import.
	Module string
	// Name is the possibly empty secondary namespace of this import.
	Name string
	// Kind is the ExternKind describing which of the following fields is set.
	Kind ExternKind
	// DescFunc is the index in Module.TypeSection when Kind equals ExternKindFunc.
	DescFunc Index
	// DescTable is the inlined Table when Kind equals ExternKindTable.
	DescTable *Table
	// DescMem is the inlined Memory when Kind equals ExternKindMemory.
	DescMem *Memory
	// DescGlobal is the inlined GlobalType when Kind equals ExternKindGlobal.
	DescGlobal *GlobalType
	// DescTag is the index in Module.TypeSection when Kind equals ExternKindTag.
	DescTag Index
}

// Export is the binary representation of an export indicated by Kind.
//
// Note: Name is treated as opaque bytes by the decoder. Neither UTF-8 validity
// nor uniqueness across the export section is checked at this layer; both are
// validation concerns.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-export
type Export struct {
	Name string
	// Kind is the ExternKind describing the index space Index belongs to.
	Kind ExternKind
	// Index is the position in the corresponding index space. It is not
	// checked against the size of that space at this layer.
	Index Index
}

// Limits bound the size range of a resizable storage such as a Memory or Table.
// The unit of Min and Max depends on what the limits apply to.
// See https://www.w3.org/TR/wasm-core-2/#limits%E2%91%A6
type Limits struct {
	Min uint32
	// Max is nil when there is no declared upper bound.
	Max *uint32
}

// Table is the binary representation of a table entry.
// See https://www.w3.org/TR/wasm-core-2/#binary-table
type Table struct {
	// ElemType is ValueTypeFuncref or ValueTypeExternref.
	ElemType ValueType
	// Limits bound the table size in elements.
	Limits *Limits
}

// Memory is the binary representation of a memory entry, whose limits are in pages.
// See https://www.w3.org/TR/wasm-core-2/#binary-mem
type Memory = Limits

// GlobalType is the binary representation of a global's type.
// See https://www.w3.org/TR/wasm-core-2/#binary-globaltype
type GlobalType struct {
	ValType ValueType
	Mutable bool
}

// Global is the binary representation of one entry in the global section.
// See https://www.w3.org/TR/wasm-core-2/#global-section%E2%91%A0
type Global struct {
	Type *GlobalType
	// Init is the constant expression producing the initial value.
	Init *ConstantExpression
}

// Local is a run of Count local variable slots sharing one value type within a
// function body.
// See https://www.w3.org/TR/wasm-core-2/#binary-local
type Local struct {
	Count uint32
	Type  ValueType
}

// Code is an entry of the code section, pairing a function's local declarations
// with its instruction bytes.
//
// Body holds the raw, un-decoded instructions, excluding the end opcode that
// terminates them in the binary. Instruction-level decoding is left to
// downstream consumers.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-code
type Code struct {
	Locals []*Local
	Body   []byte
}

// ConstantExpression is a short end-terminated instruction sequence producing
// one value, used for global, element and data offsets.
//
// Data holds the raw operand bytes of Opcode; they are captured, not decoded.
//
// See https://www.w3.org/TR/wasm-core-2/#constant-expressions%E2%91%A0
type ConstantExpression struct {
	Opcode Opcode
	Data   []byte
}

// ElementSegment initializes a table range from a vector of function indices.
// See https://www.w3.org/TR/wasm-core-2/#element-section%E2%91%A0
type ElementSegment struct {
	TableIndex Index
	// OffsetExpr produces the table offset to begin at.
	OffsetExpr *ConstantExpression
	// Init are indices into Module's function index space.
	Init []Index
}

// DataSegment initializes a memory range from raw bytes.
// See https://www.w3.org/TR/wasm-core-2/#data-section%E2%91%A0
type DataSegment struct {
	MemoryIndex Index
	// OffsetExpr produces the memory offset to begin at.
	OffsetExpr *ConstantExpression
	Init       []byte
}

// Tag is an entry of the tag section, as defined in the exception handling
// proposal. The attribute byte is currently always zero.
type Tag struct {
	// TypeIndex is an index in Module.TypeSection naming the tag's signature.
	TypeIndex Index
}
