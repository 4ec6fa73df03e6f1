package wasm

// SectionID identifies the sections of a Module in the WebAssembly Binary Format.
//
// Note: these are defined in the wasm package, instead of the binary package, as a key per section is needed regardless
// of format, and deferring to the binary type avoids confusion.
//
// See https://www.w3.org/TR/wasm-core-2/#sections%E2%91%A0
type SectionID = byte

const (
	// SectionIDCustom includes the standard defined NameSection and possibly others not defined in the standard.
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData
	SectionIDDataCount
	SectionIDTag
)

// SectionIDName returns the canonical name of a module section.
// See https://www.w3.org/TR/wasm-core-2/#sections%E2%91%A0
func SectionIDName(sectionID SectionID) string {
	switch sectionID {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data count"
	case SectionIDTag:
		return "tag"
	}
	return "unknown"
}

// Module is the static binary representation of a WebAssembly module, one field
// per section in encounter order.
//
// Each section decoder populates only its own field, and decoding is strictly
// additive: a failed section leaves its field untouched. The module is owned by
// the caller for its full lifetime; decoders never retain it.
//
// Note: FunctionSection and CodeSection are positionally aligned: the i-th type
// index pairs with the i-th code entry. The module producer guarantees equal
// lengths; the binary package cross-checks the lengths but nothing further.
//
// See https://www.w3.org/TR/wasm-core-2/#modules%E2%91%A8
type Module struct {
	// TypeSection contains the unique function signatures, in order of declaration.
	//
	// Note: in the Binary Format, this is SectionIDType.
	//
	// See https://www.w3.org/TR/wasm-core-2/#types%E2%91%A0%E2%91%A0
	TypeSection []*FunctionType

	// ImportSection contains imported entities, in order of declaration.
	//
	// Note: in the Binary Format, this is SectionIDImport.
	//
	// See https://www.w3.org/TR/wasm-core-2/#import-section%E2%91%A0
	ImportSection []*Import

	// FunctionSection contains the type index of each module-defined function,
	// in order of declaration.
	//
	// Note: in the Binary Format, this is SectionIDFunction.
	//
	// See https://www.w3.org/TR/wasm-core-2/#function-section%E2%91%A0
	FunctionSection []Index

	// TableSection contains each table defined in this module.
	//
	// Note: in the Binary Format, this is SectionIDTable.
	//
	// See https://www.w3.org/TR/wasm-core-2/#table-section%E2%91%A0
	TableSection []*Table

	// MemorySection contains each memory defined in this module.
	//
	// Note: in the Binary Format, this is SectionIDMemory.
	//
	// See https://www.w3.org/TR/wasm-core-2/#memory-section%E2%91%A0
	MemorySection []*Memory

	// GlobalSection contains each global defined in this module.
	//
	// Note: in the Binary Format, this is SectionIDGlobal.
	//
	// See https://www.w3.org/TR/wasm-core-2/#global-section%E2%91%A0
	GlobalSection []*Global

	// ExportSection contains each export defined in this module, in order of
	// declaration. Names are not required to be unique at this layer.
	//
	// Note: in the Binary Format, this is SectionIDExport.
	//
	// See https://www.w3.org/TR/wasm-core-2/#export-section%E2%91%A0
	ExportSection []*Export

	// StartSection is the index of the function to call before returning from
	// instantiation, or nil.
	//
	// Note: in the Binary Format, this is SectionIDStart.
	//
	// See https://www.w3.org/TR/wasm-core-2/#start-section%E2%91%A0
	StartSection *Index

	// ElementSection contains the table initialization segments.
	//
	// Note: in the Binary Format, this is SectionIDElement.
	//
	// See https://www.w3.org/TR/wasm-core-2/#element-section%E2%91%A0
	ElementSection []*ElementSegment

	// CodeSection contains the bodies of the module-defined functions,
	// positionally aligned with FunctionSection.
	//
	// Note: in the Binary Format, this is SectionIDCode.
	//
	// See https://www.w3.org/TR/wasm-core-2/#code-section%E2%91%A0
	CodeSection []*Code

	// DataSection contains the memory initialization segments.
	//
	// Note: in the Binary Format, this is SectionIDData.
	//
	// See https://www.w3.org/TR/wasm-core-2/#data-section%E2%91%A0
	DataSection []*DataSegment

	// DataCountSection is the declared number of data segments, or nil when absent.
	//
	// Note: in the Binary Format, this is SectionIDDataCount.
	//
	// See https://www.w3.org/TR/wasm-core-2/#data-count-section%E2%91%A0
	DataCountSection *uint32

	// TagSection contains the tags defined in this module, as in the exception
	// handling proposal.
	//
	// Note: in the Binary Format, this is SectionIDTag.
	TagSection []*Tag

	// NameSection is decoded from the "name" custom section when present.
	//
	// See https://www.w3.org/TR/wasm-core-2/#name-section%E2%91%A0
	NameSection *NameSection

	// CustomSections stores the raw payload of custom sections other than
	// "name", keyed by section name.
	CustomSections map[string][]byte
}

// NameSection represents the known subsections of the "name" custom section.
//
// See https://www.w3.org/TR/wasm-core-2/#name-section%E2%91%A0
type NameSection struct {
	// ModuleName is the possibly empty name of this module, from subsection 0.
	ModuleName string

	// FunctionNames maps a function index to its name, from subsection 1.
	FunctionNames map[Index]string

	// LocalNames maps a function index to a map of its local indices to their
	// names, from subsection 2.
	LocalNames map[Index]map[Index]string
}
