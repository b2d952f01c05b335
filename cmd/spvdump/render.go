package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/spirv-graph/spirv"
)

type moduleDoc struct {
	File         string      `yaml:"file"`
	Version      string      `yaml:"version"`
	Generator    uint32      `yaml:"generator"`
	Bound        uint32      `yaml:"bound"`
	Capabilities []uint32    `yaml:"capabilities,omitempty,flow"`
	Extensions   []string    `yaml:"extensions,omitempty"`
	SourceExts   []string    `yaml:"source_extensions,omitempty"`
	Processes    []string    `yaml:"processes,omitempty"`
	EntryPoints  []string    `yaml:"entry_points,omitempty"`
	Entities     []entityDoc `yaml:"entities"`
}

type entityDoc struct {
	ID          uint32   `yaml:"id,omitempty"`
	Op          string   `yaml:"op"`
	Name        string   `yaml:"name,omitempty"`
	Line        string   `yaml:"line,omitempty"`
	Operands    string   `yaml:"operands,omitempty"`
	Decorations []string `yaml:"decorations,omitempty"`
	Words       []uint32 `yaml:"words,flow"`
}

func newEntityDoc(e spirv.Entity) (entityDoc, error) {
	words, err := spirv.EncodeEntity(e)
	if err != nil {
		return entityDoc{}, err
	}
	return entityDoc{
		ID:          uint32(e.ID()),
		Op:          e.Op().String(),
		Name:        e.Name(),
		Line:        lineString(e.Line()),
		Operands:    describe(e),
		Decorations: decorationList(e),
		Words:       words,
	}, nil
}

func renderSummary(w io.Writer, file string, m *spirv.Module) {
	h := m.Header()
	_, _ = fmt.Fprintf(w, "Module: %s\n", file)
	_, _ = fmt.Fprintf(w, "Version: %s  Generator: 0x%08x  Bound: %d\n", h.VersionString(), h.Generator, h.Bound)
	_, _ = fmt.Fprintf(w, "Entities: %d  Ids: %d\n", m.Len(), len(m.IDs()))
	if caps := m.Capabilities(); len(caps) > 0 {
		_, _ = fmt.Fprintf(w, "Capabilities: %v\n", caps)
	}
	for _, ep := range m.EntryPoints() {
		_, _ = fmt.Fprintf(w, "Entry point: %s %q %s\n", ep.Model, ep.Label, ep.Target)
	}
	_, _ = fmt.Fprintln(w)
}

func renderTable(w io.Writer, m *spirv.Module, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if color {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleLight)
	}

	t.AppendHeader(table.Row{"ID", "Op", "Name", "Line", "Operands", "Decorations"})
	for e := range m.Entities() {
		id := ""
		if e.HasID() {
			id = e.ID().String()
		}
		t.AppendRow(table.Row{
			id,
			e.Op().String(),
			e.Name(),
			lineString(e.Line()),
			describe(e),
			strings.Join(decorationList(e), ", "),
		})
	}
	t.Render()
}

func renderWords(w io.Writer, m *spirv.Module) error {
	offset := spirv.HeaderWords
	for e := range m.Entities() {
		words, err := spirv.EncodeEntity(e)
		if err != nil {
			return err
		}
		hex := make([]string, len(words))
		for i, word := range words {
			hex[i] = fmt.Sprintf("%08x", word)
		}
		_, _ = fmt.Fprintf(w, "%6d: %-22s %s\n", offset, e.Op(), strings.Join(hex, " "))
		offset += len(words)
	}
	return nil
}

func renderYAML(w io.Writer, file string, m *spirv.Module) error {
	h := m.Header()
	doc := moduleDoc{
		File:       file,
		Version:    h.VersionString(),
		Generator:  h.Generator,
		Bound:      h.Bound,
		Extensions: m.Extensions(),
		SourceExts: m.SourceExtensions(),
		Processes:  m.Processes(),
	}
	for _, c := range m.Capabilities() {
		doc.Capabilities = append(doc.Capabilities, uint32(c))
	}
	for _, ep := range m.EntryPoints() {
		doc.EntryPoints = append(doc.EntryPoints, fmt.Sprintf("%s %s %s", ep.Model, ep.Label, ep.Target))
	}
	for e := range m.Entities() {
		ed, err := newEntityDoc(e)
		if err != nil {
			return err
		}
		doc.Entities = append(doc.Entities, ed)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func renderEntity(w io.Writer, e spirv.Entity) error {
	doc, err := newEntityDoc(e)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func lineString(l *spirv.LineInfo) string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

func decorationList(e spirv.Entity) []string {
	var out []string
	for _, kind := range e.DecorationKinds() {
		for _, dec := range e.Decorations(kind) {
			out = append(out, formatDecoration(kind, dec.Literals))
		}
	}
	for _, member := range e.DecoratedMembers() {
		for _, kind := range e.MemberDecorationKinds(member) {
			for _, dec := range e.MemberDecorations(member, kind) {
				out = append(out, fmt.Sprintf("[%d] %s", member, formatDecoration(kind, dec.Literals)))
			}
		}
	}
	return out
}

func formatDecoration(kind spirv.Decoration, literals []uint32) string {
	switch kind {
	case spirv.DecorationLinkageAttributes:
		if len(literals) > 1 {
			name, _ := spirv.LiteralString(literals[:len(literals)-1])
			return fmt.Sprintf("%s %q %d", kind, name, literals[len(literals)-1])
		}
	case spirv.DecorationUserSemantic:
		if s, ok := spirv.LiteralString(literals); ok {
			return fmt.Sprintf("%s %q", kind, s)
		}
	}
	if len(literals) == 0 {
		return kind.String()
	}
	return fmt.Sprintf("%s %v", kind, literals)
}

// describe summarizes the operands of e in a single line.
func describe(e spirv.Entity) string {
	switch x := e.(type) {
	case *spirv.Name:
		return fmt.Sprintf("%s %q", x.Target, x.Value)
	case *spirv.MemberName:
		return fmt.Sprintf("%s[%d] %q", x.Target, x.Member, x.Value)
	case *spirv.String:
		return fmt.Sprintf("%q", x.Value)
	case *spirv.Line:
		return lineString(x.Info)
	case *spirv.Extension:
		return x.Value
	case *spirv.ExtInstImport:
		return x.Set
	case *spirv.Capability:
		return fmt.Sprintf("%d", uint32(x.Kind))
	case *spirv.MemoryModel:
		return fmt.Sprintf("addressing=%d memory=%d", uint32(x.Addressing), uint32(x.Memory))
	case *spirv.EntryPoint:
		return fmt.Sprintf("%s %s %q %v", x.Model, x.Target, x.Label, x.Interface)
	case *spirv.ExecutionMode:
		return fmt.Sprintf("%s mode=%d %v", x.Target, uint32(x.Mode), x.Literals)
	case *spirv.Decorate:
		return fmt.Sprintf("%s %s", x.Target, formatDecoration(x.Kind, x.Literals))
	case *spirv.MemberDecorate:
		return fmt.Sprintf("%s[%d] %s", x.Target, x.Member, formatDecoration(x.Kind, x.Literals))
	case *spirv.TypeInt:
		return fmt.Sprintf("width=%d signed=%t", x.Width, x.Signed())
	case *spirv.TypeFloat:
		return fmt.Sprintf("width=%d", x.Width)
	case *spirv.TypeVector:
		return fmt.Sprintf("%s x %d", x.Component, x.Count)
	case *spirv.TypeMatrix:
		return fmt.Sprintf("%s x %d", x.Column, x.Columns)
	case *spirv.TypeArray:
		return fmt.Sprintf("%s[%s]", x.Element, x.Length)
	case *spirv.TypeRuntimeArray:
		return fmt.Sprintf("%s[]", x.Element)
	case *spirv.TypeStruct:
		return fmt.Sprintf("%v", x.Members)
	case *spirv.TypePointer:
		return fmt.Sprintf("storage=%d %s", uint32(x.Storage), x.Pointee)
	case *spirv.TypeFunction:
		return fmt.Sprintf("%v -> %s", x.Params, x.Return)
	case *spirv.Constant:
		return fmt.Sprintf("%s %d", x.ResultType, x.Uint64())
	case *spirv.ConstantBool:
		return fmt.Sprintf("%s %t", x.ResultType, x.Value())
	case *spirv.ConstantComposite:
		return fmt.Sprintf("%s %v", x.ResultType, x.Constituents)
	case *spirv.Variable:
		return fmt.Sprintf("%s storage=%d", x.ResultType, uint32(x.Storage))
	case *spirv.Function:
		return fmt.Sprintf("%s type=%s control=%d", x.ResultType, x.FunctionType, x.Control)
	case *spirv.Instruction:
		if x.Info().HasType {
			return fmt.Sprintf("%s %v", x.ResultType, x.Operands)
		}
		return fmt.Sprintf("%v", x.Operands)
	}
	return ""
}
