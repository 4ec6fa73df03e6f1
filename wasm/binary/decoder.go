// Package binary decodes and encodes the WebAssembly Binary Format.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-format%E2%91%A0
package binary

import (
	"bytes"
	"fmt"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

// magic is the 4 byte preamble (literally "\0asm") of the binary format.
// See https://www.w3.org/TR/wasm-core-2/#binary-magic
var magic = []byte{0x00, 0x61, 0x73, 0x6D}

// version is the little-endian encoding of 1, the only accepted version value.
// See https://www.w3.org/TR/wasm-core-2/#binary-version
var version = []byte{0x01, 0x00, 0x00, 0x00}

// DecodeModule decodes a module binary into a wasm.Module.
//
// The decode is all-or-nothing: the first malformed field aborts it and no
// Module is returned. Decoded byte fields (code bodies, data segments, custom
// sections) alias the input buffer rather than copying it, so the caller must
// not mutate the input while the Module is in use.
func DecodeModule(binary []byte) (*wasm.Module, error) {
	r := newReader(binary)
	if err := decodePreamble(r); err != nil {
		return nil, err
	}

	m := &wasm.Module{}
	for r.len() > 0 {
		if err := decodeSection(r, m); err != nil {
			return nil, err
		}
	}

	if len(m.FunctionSection) != len(m.CodeSection) {
		return nil, fmt.Errorf("function and code section have inconsistent lengths: %d and %d",
			len(m.FunctionSection), len(m.CodeSection))
	}
	return m, nil
}

// decodePreamble consumes the 4-byte magic and the 4-byte little-endian
// version, succeeding only when both match. A pure gate: no output.
func decodePreamble(r *reader) error {
	buf, err := r.readBytes(4)
	if err != nil || !bytes.Equal(buf, magic) {
		return wasm.ErrInvalidMagicNumber
	}

	if v, err := r.readUint32(); err != nil || v != 1 {
		return wasm.ErrInvalidVersion
	}
	return nil
}

// decodeSection consumes one section id byte and the declared payload length,
// then routes to the decoder for that id, populating its field of m. The
// decoder must consume exactly the declared byte count or the section fails.
func decodeSection(r *reader, m *wasm.Module) error {
	id, err := r.readByte()
	if err != nil {
		return fmt.Errorf("read section id: %w", err)
	}

	size, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return fmt.Errorf("get size of section for id=%d: %w", id, err)
	}

	start := r.pos
	switch id {
	case wasm.SectionIDCustom:
		err = decodeCustomSection(r, m, size)
	case wasm.SectionIDType:
		m.TypeSection, err = decodeTypeSection(r)
	case wasm.SectionIDImport:
		m.ImportSection, err = decodeImportSection(r)
	case wasm.SectionIDFunction:
		m.FunctionSection, err = decodeFunctionSection(r)
	case wasm.SectionIDTable:
		m.TableSection, err = decodeTableSection(r)
	case wasm.SectionIDMemory:
		m.MemorySection, err = decodeMemorySection(r)
	case wasm.SectionIDGlobal:
		m.GlobalSection, err = decodeGlobalSection(r)
	case wasm.SectionIDExport:
		m.ExportSection, err = decodeExportSection(r)
	case wasm.SectionIDStart:
		m.StartSection, err = decodeStartSection(r)
	case wasm.SectionIDElement:
		m.ElementSection, err = decodeElementSection(r)
	case wasm.SectionIDCode:
		m.CodeSection, err = decodeCodeSection(r)
	case wasm.SectionIDData:
		m.DataSection, err = decodeDataSection(r)
	case wasm.SectionIDDataCount:
		m.DataCountSection, err = decodeDataCountSection(r)
	case wasm.SectionIDTag:
		m.TagSection, err = decodeTagSection(r)
	default:
		err = fmt.Errorf("%w: %d", wasm.ErrInvalidSectionID, id)
	}

	if err == nil && r.pos-start != int(size) {
		err = fmt.Errorf("invalid section length: expected to be %d but got %d", size, r.pos-start)
	}
	if err != nil {
		return fmt.Errorf("%s section: %w", wasm.SectionIDName(id), err)
	}
	return nil
}

// decodeCustomSection stores the section's raw payload under its name, except
// for the standard "name" section which decodes into m.NameSection.
func decodeCustomSection(r *reader, m *wasm.Module, size uint32) error {
	cs, err := r.sub(size)
	if err != nil {
		return fmt.Errorf("read custom section payload: %w", err)
	}

	name, err := decodeName(cs)
	if err != nil {
		return fmt.Errorf("read custom section name: %w", err)
	}
	data := cs.rest()

	if name == "name" {
		if m.NameSection != nil {
			return fmt.Errorf("redundant custom section %s", name)
		}
		if m.NameSection, err = decodeNameSection(data); err != nil {
			return fmt.Errorf("decode the name section: %w", err)
		}
		return nil
	}

	if _, ok := m.CustomSections[name]; ok {
		return fmt.Errorf("redundant custom section %s", name)
	}
	if m.CustomSections == nil {
		m.CustomSections = map[string][]byte{}
	}
	m.CustomSections[name] = data
	return nil
}
