package binary

import (
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

func decodeTypeSection(r *reader) ([]*wasm.FunctionType, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.FunctionType, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeFunctionType(r); err != nil {
			return nil, fmt.Errorf("read type[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeImportSection(r *reader) ([]*wasm.Import, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Import, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeImport(r); err != nil {
			return nil, fmt.Errorf("read import[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeFunctionSection(r *reader) ([]wasm.Index, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]wasm.Index, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], _, err = leb128.DecodeUint32(r); err != nil {
			return nil, fmt.Errorf("get type index of function[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeTableSection(r *reader) ([]*wasm.Table, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Table, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeTable(r); err != nil {
			return nil, fmt.Errorf("read table[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeMemorySection(r *reader) ([]*wasm.Memory, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Memory, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeLimits(r); err != nil {
			return nil, fmt.Errorf("read memory[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeGlobalSection(r *reader) ([]*wasm.Global, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Global, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeGlobal(r); err != nil {
			return nil, fmt.Errorf("read global[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeExportSection(r *reader) ([]*wasm.Export, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Export, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeExport(r); err != nil {
			return nil, fmt.Errorf("read export[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeStartSection(r *reader) (*wasm.Index, error) {
	funcidx, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get function index: %w", err)
	}
	return &funcidx, nil
}

func decodeElementSection(r *reader) ([]*wasm.ElementSegment, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.ElementSegment, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeElementSegment(r); err != nil {
			return nil, fmt.Errorf("read element[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeCodeSection(r *reader) ([]*wasm.Code, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Code, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeCode(r); err != nil {
			return nil, fmt.Errorf("read code[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeDataSection(r *reader) ([]*wasm.DataSegment, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.DataSegment, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeDataSegment(r); err != nil {
			return nil, fmt.Errorf("read data segment[%d]: %w", i, err)
		}
	}
	return result, nil
}

func decodeDataCountSection(r *reader) (*uint32, error) {
	count, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get data segment count: %w", err)
	}
	return &count, nil
}

func decodeTagSection(r *reader) ([]*wasm.Tag, error) {
	vs, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}
	if vs == 0 {
		return nil, nil
	}

	result := make([]*wasm.Tag, vs)
	for i := uint32(0); i < vs; i++ {
		if result[i], err = decodeTag(r); err != nil {
			return nil, fmt.Errorf("read tag[%d]: %w", i, err)
		}
	}
	return result, nil
}

// encodeSection encodes the sectionID, the size of its contents in bytes, followed by the contents.
// See https://www.w3.org/TR/wasm-core-2/#sections%E2%91%A0
func encodeSection(sectionID wasm.SectionID, contents []byte) []byte {
	return append([]byte{sectionID}, encodeSizePrefixed(contents)...)
}

// encodeTypeSection encodes a SectionIDType for the given types.
// See https://www.w3.org/TR/wasm-core-2/#type-section%E2%91%A0
func encodeTypeSection(types []*wasm.FunctionType) []byte {
	contents := leb128.EncodeUint32(uint32(len(types)))
	for _, t := range types {
		contents = append(contents, encodeFunctionType(t)...)
	}
	return encodeSection(wasm.SectionIDType, contents)
}

// encodeImportSection encodes a SectionIDImport for the given imports.
// See https://www.w3.org/TR/wasm-core-2/#import-section%E2%91%A0
func encodeImportSection(imports []*wasm.Import) []byte {
	contents := leb128.EncodeUint32(uint32(len(imports)))
	for _, i := range imports {
		contents = append(contents, encodeImport(i)...)
	}
	return encodeSection(wasm.SectionIDImport, contents)
}

// encodeFunctionSection encodes a SectionIDFunction for the type indices of
// the module-defined functions.
// See https://www.w3.org/TR/wasm-core-2/#function-section%E2%91%A0
func encodeFunctionSection(typeIndices []wasm.Index) []byte {
	contents := leb128.EncodeUint32(uint32(len(typeIndices)))
	for _, index := range typeIndices {
		contents = append(contents, leb128.EncodeUint32(index)...)
	}
	return encodeSection(wasm.SectionIDFunction, contents)
}

// encodeTableSection encodes a SectionIDTable for the given tables.
// See https://www.w3.org/TR/wasm-core-2/#table-section%E2%91%A0
func encodeTableSection(tables []*wasm.Table) []byte {
	contents := leb128.EncodeUint32(uint32(len(tables)))
	for _, t := range tables {
		contents = append(contents, encodeTable(t)...)
	}
	return encodeSection(wasm.SectionIDTable, contents)
}

// encodeMemorySection encodes a SectionIDMemory for the given memories.
// See https://www.w3.org/TR/wasm-core-2/#memory-section%E2%91%A0
func encodeMemorySection(memories []*wasm.Memory) []byte {
	contents := leb128.EncodeUint32(uint32(len(memories)))
	for _, m := range memories {
		contents = append(contents, encodeLimits(m)...)
	}
	return encodeSection(wasm.SectionIDMemory, contents)
}

// encodeGlobalSection encodes a SectionIDGlobal for the given globals.
// See https://www.w3.org/TR/wasm-core-2/#global-section%E2%91%A0
func encodeGlobalSection(globals []*wasm.Global) []byte {
	contents := leb128.EncodeUint32(uint32(len(globals)))
	for _, g := range globals {
		contents = append(contents, encodeGlobal(g)...)
	}
	return encodeSection(wasm.SectionIDGlobal, contents)
}

// encodeExportSection encodes a SectionIDExport for the given exports,
// preserving declaration order.
// See https://www.w3.org/TR/wasm-core-2/#export-section%E2%91%A0
func encodeExportSection(exports []*wasm.Export) []byte {
	contents := leb128.EncodeUint32(uint32(len(exports)))
	for _, e := range exports {
		contents = append(contents, encodeExport(e)...)
	}
	return encodeSection(wasm.SectionIDExport, contents)
}

// encodeStartSection encodes a SectionIDStart for the given function index.
// See https://www.w3.org/TR/wasm-core-2/#start-section%E2%91%A0
func encodeStartSection(funcidx wasm.Index) []byte {
	return encodeSection(wasm.SectionIDStart, leb128.EncodeUint32(funcidx))
}

// encodeElementSection encodes a SectionIDElement for the given segments.
// See https://www.w3.org/TR/wasm-core-2/#element-section%E2%91%A0
func encodeElementSection(segments []*wasm.ElementSegment) []byte {
	contents := leb128.EncodeUint32(uint32(len(segments)))
	for _, s := range segments {
		contents = append(contents, encodeElementSegment(s)...)
	}
	return encodeSection(wasm.SectionIDElement, contents)
}

// encodeCodeSection encodes a SectionIDCode for the given function bodies.
// See https://www.w3.org/TR/wasm-core-2/#code-section%E2%91%A0
func encodeCodeSection(code []*wasm.Code) []byte {
	contents := leb128.EncodeUint32(uint32(len(code)))
	for _, c := range code {
		contents = append(contents, encodeCode(c)...)
	}
	return encodeSection(wasm.SectionIDCode, contents)
}

// encodeDataSection encodes a SectionIDData for the given segments.
// See https://www.w3.org/TR/wasm-core-2/#data-section%E2%91%A0
func encodeDataSection(segments []*wasm.DataSegment) []byte {
	contents := leb128.EncodeUint32(uint32(len(segments)))
	for _, s := range segments {
		contents = append(contents, encodeDataSegment(s)...)
	}
	return encodeSection(wasm.SectionIDData, contents)
}

// encodeDataCountSection encodes a SectionIDDataCount for the given count.
// See https://www.w3.org/TR/wasm-core-2/#data-count-section%E2%91%A0
func encodeDataCountSection(count uint32) []byte {
	return encodeSection(wasm.SectionIDDataCount, leb128.EncodeUint32(count))
}

// encodeTagSection encodes a SectionIDTag for the given tags.
func encodeTagSection(tags []*wasm.Tag) []byte {
	contents := leb128.EncodeUint32(uint32(len(tags)))
	for _, t := range tags {
		contents = append(contents, encodeTag(t)...)
	}
	return encodeSection(wasm.SectionIDTag, contents)
}
