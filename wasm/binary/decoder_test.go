package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmtools/wabin/wasm"
)

// TestDecodeModule relies on unit tests for EncodeModule, specifically that the
// encoding is both known and correct. This avoids having to copy/paste or share
// variables to assert against byte arrays.
func TestDecodeModule(t *testing.T) {
	i32, i64, f32 := wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32
	zero := uint32(0)
	max := uint32(2)

	tests := []struct {
		name  string
		input *wasm.Module // round trip test!
	}{
		{
			name:  "empty",
			input: &wasm.Module{},
		},
		{
			name:  "only name section",
			input: &wasm.Module{NameSection: &wasm.NameSection{ModuleName: "simple"}},
		},
		{
			name: "only custom section",
			input: &wasm.Module{CustomSections: map[string][]byte{
				"meme": {1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
			}},
		},
		{
			name: "type section",
			input: &wasm.Module{
				TypeSection: []*wasm.FunctionType{
					{},
					{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
					{Params: []wasm.ValueType{i32, i32, i32, i32}, Results: []wasm.ValueType{i32}},
				},
			},
		},
		{
			name: "multi-value result",
			input: &wasm.Module{
				TypeSection: []*wasm.FunctionType{
					{Params: []wasm.ValueType{i32}, Results: []wasm.ValueType{i32, i64}},
				},
			},
		},
		{
			name: "type and import section",
			input: &wasm.Module{
				TypeSection: []*wasm.FunctionType{
					{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}},
					{Params: []wasm.ValueType{f32, f32}, Results: []wasm.ValueType{f32}},
				},
				ImportSection: []*wasm.Import{
					{
						Module: "Math", Name: "Mul",
						Kind:     wasm.ExternKindFunc,
						DescFunc: 1,
					}, {
						Module: "Math", Name: "Add",
						Kind:     wasm.ExternKindFunc,
						DescFunc: 0,
					},
				},
			},
		},
		{
			name: "table and memory section",
			input: &wasm.Module{
				TableSection:  []*wasm.Table{{ElemType: wasm.ValueTypeFuncref, Limits: &wasm.Limits{Min: 3}}},
				MemorySection: []*wasm.Memory{{Min: 1, Max: &max}},
			},
		},
		{
			name: "global section",
			input: &wasm.Module{
				GlobalSection: []*wasm.Global{
					{
						Type: &wasm.GlobalType{ValType: i32, Mutable: true},
						Init: &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x00}},
					},
				},
			},
		},
		{
			name: "exports with a duplicated name",
			input: &wasm.Module{
				ExportSection: []*wasm.Export{
					{Name: "mem", Kind: wasm.ExternKindMemory, Index: 0},
					{Name: "mem", Kind: wasm.ExternKindGlobal, Index: 1},
				},
			},
		},
		{
			name: "start section",
			input: &wasm.Module{
				TypeSection:     []*wasm.FunctionType{{}},
				FunctionSection: []wasm.Index{0},
				CodeSection:     []*wasm.Code{{Body: []byte{0x01, 0x01}}},
				StartSection:    &zero,
			},
		},
		{
			name: "element section",
			input: &wasm.Module{
				TableSection: []*wasm.Table{{ElemType: wasm.ValueTypeFuncref, Limits: &wasm.Limits{Min: 1}}},
				ElementSection: []*wasm.ElementSegment{
					{
						TableIndex: 0,
						OffsetExpr: &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x00}},
						Init:       []wasm.Index{0},
					},
				},
			},
		},
		{
			name: "data and data count section",
			input: &wasm.Module{
				MemorySection:    []*wasm.Memory{{Min: 1}},
				DataCountSection: &zero,
				DataSection: []*wasm.DataSegment{
					{
						MemoryIndex: 0,
						OffsetExpr:  &wasm.ConstantExpression{Opcode: wasm.OpcodeI32Const, Data: []byte{0x08}},
						Init:        []byte("hello"),
					},
				},
			},
		},
		{
			name: "tag section",
			input: &wasm.Module{
				TypeSection: []*wasm.FunctionType{{Params: []wasm.ValueType{i32}}},
				TagSection:  []*wasm.Tag{{TypeIndex: 0}},
			},
		},
		{
			name: "function and code section",
			input: &wasm.Module{
				TypeSection:     []*wasm.FunctionType{{Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32}}},
				FunctionSection: []wasm.Index{0},
				CodeSection: []*wasm.Code{
					{Body: []byte{0x20, 0x00, 0x20, 0x01, 0x6a}},
				},
			},
		},
		{
			name: "code with locals",
			input: &wasm.Module{
				TypeSection:     []*wasm.FunctionType{{}},
				FunctionSection: []wasm.Index{0},
				CodeSection: []*wasm.Code{
					{
						Locals: []*wasm.Local{{Count: 2, Type: i32}, {Count: 1, Type: i64}},
						Body:   []byte{0x20, 0x00},
					},
				},
			},
		},
		{
			name: "name section and a custom section",
			input: &wasm.Module{
				NameSection: &wasm.NameSection{
					ModuleName:    "simple",
					FunctionNames: map[wasm.Index]string{0: "wasi.args_get", 1: "main"},
					LocalNames:    map[wasm.Index]map[wasm.Index]string{1: {0: "argc", 1: "argv"}},
				},
				CustomSections: map[string][]byte{
					"meme": {1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
				},
			},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			m, e := DecodeModule(EncodeModule(tc.input))
			require.NoError(t, e)
			require.Equal(t, tc.input, m)
		})
	}
}

func TestDecodePreamble(t *testing.T) {
	require.NoError(t, decodePreamble(newReader([]byte("\x00asm\x01\x00\x00\x00"))))
}

func TestDecodePreamble_InvalidMagic(t *testing.T) {
	// Any single-byte mutation of the magic must be rejected.
	for i := 0; i < 4; i++ {
		input := []byte("\x00asm\x01\x00\x00\x00")
		input[i] ^= 0xff
		require.ErrorIs(t, decodePreamble(newReader(input)), wasm.ErrInvalidMagicNumber)
	}

	// So must a truncated one.
	require.ErrorIs(t, decodePreamble(newReader([]byte("\x00as"))), wasm.ErrInvalidMagicNumber)
}

func TestDecodePreamble_InvalidVersion(t *testing.T) {
	for _, input := range [][]byte{
		[]byte("\x00asm\x02\x00\x00\x00"),
		[]byte("\x00asm\x00\x00\x00\x00"),
		[]byte("\x00asm\x01\x00\x00\x01"), // not little-endian 1
		[]byte("\x00asm\x01\x00"),
	} {
		require.ErrorIs(t, decodePreamble(newReader(input)), wasm.ErrInvalidVersion)
	}
}

func TestDecodeModule_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "wrong magic",
			input:       []byte("wasm\x01\x00\x00\x00"),
			expectedErr: "invalid magic number",
		},
		{
			name:        "wrong version",
			input:       []byte("\x00asm\x01\x00\x00\x01"),
			expectedErr: "invalid version header",
		},
		{
			name: "unknown section id",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				0x0e, 0x00), // id 14 is not defined
			expectedErr: "unknown section: invalid section id: 14",
		},
		{
			name: "section size shorter than payload",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDType, 0x01, // declares one byte
				0x01,             // one type
				0x60, 0x00, 0x00, // which takes three more
			),
			expectedErr: "type section: invalid section length: expected to be 1 but got 4",
		},
		{
			name: "section size longer than payload",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDType, 0x03, // declares three bytes
				0x00, // but the empty vector takes one
				0x00, 0x00),
			expectedErr: "type section: invalid section length: expected to be 3 but got 1",
		},
		{
			name: "type section truncated",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDType, 0x01,
				0x01), // one type, but the stream ends
			expectedErr: "type section: read type[0]: read leading byte: unexpected end of binary",
		},
		{
			name: "function without code",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDFunction, 0x02,
				0x01, 0x00),
			expectedErr: "function and code section have inconsistent lengths: 1 and 0",
		},
		{
			name: "redundant custom section",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDCustom, 0x05,
				0x04, 'm', 'e', 'm', 'e',
				wasm.SectionIDCustom, 0x05,
				0x04, 'm', 'e', 'm', 'e'),
			expectedErr: "custom section: redundant custom section meme",
		},
		{
			name: "redundant name section",
			input: append([]byte("\x00asm\x01\x00\x00\x00"),
				wasm.SectionIDCustom, 0x05,
				0x04, 'n', 'a', 'm', 'e',
				wasm.SectionIDCustom, 0x05,
				0x04, 'n', 'a', 'm', 'e'),
			expectedErr: "custom section: redundant custom section name",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, e := DecodeModule(tc.input)
			require.EqualError(t, e, tc.expectedErr)
		})
	}
}
