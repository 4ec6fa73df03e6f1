package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wasmtools/wabin/wasm"
	"github.com/wasmtools/wabin/wasm/binary"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <module.wasm>",
	Short: "Print the sections of a WebAssembly binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		bin, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		m, err := binary.DecodeModule(bin)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		logger.Debug("decoded module",
			zap.String("path", path),
			zap.Int("size", len(bin)),
			zap.Int("types", len(m.TypeSection)),
			zap.Int("functions", len(m.FunctionSection)))

		fmt.Fprint(cmd.OutOrStdout(), renderModule(m))
		return nil
	},
}

// renderModule returns a one-line-per-entry description of each non-empty
// section, in the order sections appear in the binary format.
func renderModule(m *wasm.Module) string {
	var out strings.Builder

	writeSection := func(id wasm.SectionID, count int, lines []string) {
		if count == 0 {
			return
		}
		fmt.Fprintf(&out, "%s (%d)\n", sectionStyle.Render(wasm.SectionIDName(id)), count)
		for _, l := range lines {
			fmt.Fprintf(&out, "  %s\n", l)
		}
	}

	var lines []string
	for i, t := range m.TypeSection {
		lines = append(lines, fmt.Sprintf("[%d] %s", i, t.String()))
	}
	writeSection(wasm.SectionIDType, len(m.TypeSection), lines)

	lines = nil
	for i, imp := range m.ImportSection {
		lines = append(lines, fmt.Sprintf("[%d] %s", i, describeImport(imp)))
	}
	writeSection(wasm.SectionIDImport, len(m.ImportSection), lines)

	lines = nil
	for i, typeIndex := range m.FunctionSection {
		l := fmt.Sprintf("[%d] type[%d]", i, typeIndex)
		if name, ok := functionName(m, wasm.Index(i)); ok {
			l += " " + name
		}
		lines = append(lines, l)
	}
	writeSection(wasm.SectionIDFunction, len(m.FunctionSection), lines)

	lines = nil
	for i, table := range m.TableSection {
		lines = append(lines, fmt.Sprintf("[%d] %s %s", i,
			wasm.ValueTypeName(table.ElemType), describeLimits(table.Limits)))
	}
	writeSection(wasm.SectionIDTable, len(m.TableSection), lines)

	lines = nil
	for i, mem := range m.MemorySection {
		lines = append(lines, fmt.Sprintf("[%d] %s pages", i, describeLimits(mem)))
	}
	writeSection(wasm.SectionIDMemory, len(m.MemorySection), lines)

	lines = nil
	for i, g := range m.GlobalSection {
		mut := "const"
		if g.Type.Mutable {
			mut = "var"
		}
		lines = append(lines, fmt.Sprintf("[%d] %s %s", i, mut, wasm.ValueTypeName(g.Type.ValType)))
	}
	writeSection(wasm.SectionIDGlobal, len(m.GlobalSection), lines)

	lines = nil
	for i, tag := range m.TagSection {
		lines = append(lines, fmt.Sprintf("[%d] type[%d]", i, tag.TypeIndex))
	}
	writeSection(wasm.SectionIDTag, len(m.TagSection), lines)

	lines = nil
	for i, e := range m.ExportSection {
		lines = append(lines, fmt.Sprintf("[%d] %q %s[%d]", i, e.Name, wasm.ExternKindName(e.Kind), e.Index))
	}
	writeSection(wasm.SectionIDExport, len(m.ExportSection), lines)

	if m.StartSection != nil {
		writeSection(wasm.SectionIDStart, 1, []string{fmt.Sprintf("function[%d]", *m.StartSection)})
	}

	lines = nil
	for i, e := range m.ElementSection {
		lines = append(lines, fmt.Sprintf("[%d] table[%d] %d funcs", i, e.TableIndex, len(e.Init)))
	}
	writeSection(wasm.SectionIDElement, len(m.ElementSection), lines)

	lines = nil
	for i, c := range m.CodeSection {
		lines = append(lines, fmt.Sprintf("[%d] %d bytes", i, len(c.Body)))
	}
	writeSection(wasm.SectionIDCode, len(m.CodeSection), lines)

	lines = nil
	for i, d := range m.DataSection {
		lines = append(lines, fmt.Sprintf("[%d] %d bytes", i, len(d.Init)))
	}
	writeSection(wasm.SectionIDData, len(m.DataSection), lines)

	lines = nil
	names := make([]string, 0, len(m.CustomSections))
	for name := range m.CustomSections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%q %d bytes", name, len(m.CustomSections[name])))
	}
	writeSection(wasm.SectionIDCustom, len(m.CustomSections), lines)

	if m.NameSection != nil && m.NameSection.ModuleName != "" {
		fmt.Fprintf(&out, "module name: %q\n", m.NameSection.ModuleName)
	}
	return out.String()
}

// describeImport renders one import entry with its kind-specific descriptor.
func describeImport(i *wasm.Import) string {
	target := i.Module + "." + i.Name
	switch i.Kind {
	case wasm.ExternKindFunc:
		return fmt.Sprintf("func %s type[%d]", target, i.DescFunc)
	case wasm.ExternKindTable:
		return fmt.Sprintf("table %s %s %s", target,
			wasm.ValueTypeName(i.DescTable.ElemType), describeLimits(i.DescTable.Limits))
	case wasm.ExternKindMemory:
		return fmt.Sprintf("memory %s %s pages", target, describeLimits(i.DescMem))
	case wasm.ExternKindGlobal:
		mut := "const"
		if i.DescGlobal.Mutable {
			mut = "var"
		}
		return fmt.Sprintf("global %s %s %s", target, mut, wasm.ValueTypeName(i.DescGlobal.ValType))
	case wasm.ExternKindTag:
		return fmt.Sprintf("tag %s type[%d]", target, i.DescTag)
	}
	return target
}

// describeLimits renders limits as "min..max" or "min.." when unbounded.
func describeLimits(l *wasm.Limits) string {
	if l.Max == nil {
		return fmt.Sprintf("%d..", l.Min)
	}
	return fmt.Sprintf("%d..%d", l.Min, *l.Max)
}

// functionName resolves a module-defined function's name, offsetting i by the
// count of imported functions as the name section indexes both.
func functionName(m *wasm.Module, i wasm.Index) (string, bool) {
	if m.NameSection == nil {
		return "", false
	}
	imported := wasm.Index(0)
	for _, imp := range m.ImportSection {
		if imp.Kind == wasm.ExternKindFunc {
			imported++
		}
	}
	name, ok := m.NameSection.FunctionNames[imported+i]
	return name, ok
}
