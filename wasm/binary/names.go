package binary

import (
	"fmt"
	"sort"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/leb128"
)

const (
	// subsectionIDModuleName contains only the module name.
	subsectionIDModuleName = uint8(0)
	// subsectionIDFunctionNames is a map of indices to function names, in ascending order by function index.
	subsectionIDFunctionNames = uint8(1)
	// subsectionIDLocalNames contain a map of function indices to a map of local indices to their names, in ascending
	// order by function and local index.
	subsectionIDLocalNames = uint8(2)
)

// decodeNameSection deserializes the data associated with the "name" key in
// SectionIDCustom according to the standard:
//
//   - ModuleName decode from subsection 0
//   - FunctionNames decode from subsection 1
//   - LocalNames decode from subsection 2
//
// Unknown subsections are skipped by their declared size.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-namesec
func decodeNameSection(data []byte) (*wasm.NameSection, error) {
	r := newReader(data)
	result := &wasm.NameSection{}

	for r.len() > 0 {
		subsectionID, err := r.readByte()
		if err != nil {
			return nil, fmt.Errorf("read a subsection ID: %w", err)
		}

		subsectionSize, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read the size of subsection[%d]: %w", subsectionID, err)
		}

		switch subsectionID {
		case subsectionIDModuleName:
			if result.ModuleName, err = decodeName(r); err != nil {
				return nil, fmt.Errorf("read the module name: %w", err)
			}
		case subsectionIDFunctionNames:
			if result.FunctionNames, err = decodeFunctionNames(r); err != nil {
				return nil, err
			}
		case subsectionIDLocalNames:
			if result.LocalNames, err = decodeLocalNames(r); err != nil {
				return nil, err
			}
		default: // Skip other subsections.
			if _, err := r.readBytes(subsectionSize); err != nil {
				return nil, fmt.Errorf("skip subsection[%d]: %w", subsectionID, err)
			}
		}
	}
	return result, nil
}

func decodeFunctionNames(r *reader) (map[wasm.Index]string, error) {
	functionCount, err := decodeFunctionCount(r, subsectionIDFunctionNames)
	if err != nil {
		return nil, err
	}

	result := make(map[wasm.Index]string, functionCount)
	for i := uint32(0); i < functionCount; i++ {
		functionIndex, err := decodeFunctionIndex(r, subsectionIDFunctionNames)
		if err != nil {
			return nil, err
		}

		name, err := decodeName(r)
		if err != nil {
			return nil, fmt.Errorf("read function[%d] name: %w", functionIndex, err)
		}
		result[functionIndex] = name
	}
	return result, nil
}

func decodeLocalNames(r *reader) (map[wasm.Index]map[wasm.Index]string, error) {
	functionCount, err := decodeFunctionCount(r, subsectionIDLocalNames)
	if err != nil {
		return nil, err
	}

	result := make(map[wasm.Index]map[wasm.Index]string, functionCount)
	for i := uint32(0); i < functionCount; i++ {
		functionIndex, err := decodeFunctionIndex(r, subsectionIDLocalNames)
		if err != nil {
			return nil, err
		}

		localCount, _, err := leb128.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read the local count for function[%d]: %w", functionIndex, err)
		}

		locals := make(map[wasm.Index]string, localCount)
		for j := uint32(0); j < localCount; j++ {
			localIndex, _, err := leb128.DecodeUint32(r)
			if err != nil {
				return nil, fmt.Errorf("read a local index of function[%d]: %w", functionIndex, err)
			}

			name, err := decodeName(r)
			if err != nil {
				return nil, fmt.Errorf("read function[%d] local[%d] name: %w", functionIndex, localIndex, err)
			}
			locals[localIndex] = name
		}
		result[functionIndex] = locals
	}
	return result, nil
}

func decodeFunctionIndex(r *reader, subsectionID uint8) (wasm.Index, error) {
	functionIndex, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("read a function index in subsection[%d]: %w", subsectionID, err)
	}
	return functionIndex, nil
}

func decodeFunctionCount(r *reader, subsectionID uint8) (uint32, error) {
	functionCount, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("read the function count of subsection[%d]: %w", subsectionID, err)
	}
	return functionCount, nil
}

// encodeNameSectionData serializes the data for the "name" key in
// SectionIDCustom according to the standard.
//
// Note: The result can be nil because this does not encode empty subsections.
//
// See https://www.w3.org/TR/wasm-core-2/#binary-namesec
func encodeNameSectionData(n *wasm.NameSection) (data []byte) {
	if n.ModuleName != "" {
		data = append(data, encodeNameSubsection(subsectionIDModuleName, encodeName(n.ModuleName))...)
	}
	if fd := encodeFunctionNameData(n); len(fd) > 0 {
		data = append(data, encodeNameSubsection(subsectionIDFunctionNames, fd)...)
	}
	if ld := encodeLocalNameData(n); len(ld) > 0 {
		data = append(data, encodeNameSubsection(subsectionIDLocalNames, ld)...)
	}
	return
}

// encodeFunctionNameData encodes the data for the function name subsection.
// See https://www.w3.org/TR/wasm-core-2/#binary-funcnamesec
func encodeFunctionNameData(n *wasm.NameSection) []byte {
	if len(n.FunctionNames) == 0 {
		return nil
	}
	return encodeSortedAndSizePrefixed(n.FunctionNames)
}

func encodeSortedAndSizePrefixed(m map[wasm.Index]string) []byte {
	count := uint32(len(m))
	data := leb128.EncodeUint32(count)

	// Sort the keys so that they encode in ascending order.
	keys := make([]wasm.Index, 0, count)
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, i := range keys {
		data = append(data, leb128.EncodeUint32(i)...)
		data = append(data, encodeName(m[i])...)
	}
	return data
}

// encodeLocalNameData encodes the data for the local name subsection.
// See https://www.w3.org/TR/wasm-core-2/#binary-localnamesec
func encodeLocalNameData(n *wasm.NameSection) []byte {
	if len(n.LocalNames) == 0 {
		return nil
	}

	funcNameCount := uint32(len(n.LocalNames))
	subsection := leb128.EncodeUint32(funcNameCount)

	// Sort the function indices so that they encode in ascending order.
	funcIndex := make([]wasm.Index, 0, funcNameCount)
	for k := range n.LocalNames {
		funcIndex = append(funcIndex, k)
	}
	sort.Slice(funcIndex, func(i, j int) bool { return funcIndex[i] < funcIndex[j] })

	for _, i := range funcIndex {
		locals := encodeSortedAndSizePrefixed(n.LocalNames[i])
		subsection = append(subsection, leb128.EncodeUint32(i)...)
		subsection = append(subsection, locals...)
	}
	return subsection
}

// encodeNameSubsection returns a buffer encoding the given subsection.
// See https://www.w3.org/TR/wasm-core-2/#subsections%E2%91%A0
func encodeNameSubsection(subsectionID uint8, content []byte) []byte {
	result := []byte{subsectionID}
	return append(result, encodeSizePrefixed(content)...)
}

// encodeSizePrefixed encodes the data prefixed by their size.
func encodeSizePrefixed(data []byte) []byte {
	size := leb128.EncodeUint32(uint32(len(data)))
	return append(size, data...)
}
