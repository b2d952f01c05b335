package spirv

import (
	"strings"

	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Source records the source language of the module. File and Text are
// optional trailing operands; HasFile and HasText record their presence.
type Source struct {
	Entry
	Text      string
	continued []string
	File      Id
	Version   uint32
	Language  SourceLanguage
	HasFile   bool
	HasText   bool
}

// FullText returns Text followed by every OpSourceContinued fragment.
func (x *Source) FullText() string {
	if len(x.continued) == 0 {
		return x.Text
	}
	return x.Text + strings.Join(x.continued, "")
}

func (x *Source) decode(d *fieldDecoder) {
	x.Language = SourceLanguage(d.word())
	x.Version = d.word()
	if d.more() {
		x.File = d.id()
		x.HasFile = true
	}
	if d.more() {
		x.Text = d.str()
		x.HasText = true
	}
	if d.err != nil {
		return
	}
	d.m.source = x
}

func (x *Source) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Language))
	w.WriteWord(x.Version)
	if x.HasFile || x.File.IsValid() || x.HasText {
		w.WriteWord(uint32(x.File))
	}
	if x.HasText {
		w.WriteString(x.Text)
	}
}

// SourceContinued continues the text of the preceding OpSource.
type SourceContinued struct {
	Entry
	Text string
}

func (x *SourceContinued) decode(d *fieldDecoder) {
	x.Text = d.str()
	if d.err != nil || d.m.source == nil {
		return
	}
	d.m.source.continued = append(d.m.source.continued, x.Text)
}

func (x *SourceContinued) encode(w *binary.Writer) { w.WriteString(x.Text) }

type SourceExtension struct {
	Entry
	Extension string
}

func (x *SourceExtension) decode(d *fieldDecoder) {
	x.Extension = d.str()
	if d.err != nil {
		return
	}
	d.m.sourceExts = append(d.m.sourceExts, x.Extension)
}

func (x *SourceExtension) encode(w *binary.Writer) { w.WriteString(x.Extension) }

// String is a debug string, typically a file name referenced by OpLine.
type String struct {
	Entry
	Value string
}

func (x *String) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Value = d.str()
}

func (x *String) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteString(x.Value)
}

// Line makes its location the module's current line.
type Line struct {
	Entry
	Info *LineInfo
}

func (x *Line) decode(d *fieldDecoder) {
	info := &LineInfo{}
	info.File = d.id()
	info.Line = d.word()
	info.Column = d.word()
	if d.err != nil {
		return
	}
	x.Info = info
	d.m.SetCurrentLine(info)
}

func (x *Line) encode(w *binary.Writer) {
	if x.Info == nil {
		w.WriteWords([]uint32{0, 0, 0})
		return
	}
	w.WriteWord(uint32(x.Info.File))
	w.WriteWord(x.Info.Line)
	w.WriteWord(x.Info.Column)
}

// NoLine clears the module's current line.
type NoLine struct{ Entry }

func (x *NoLine) decode(d *fieldDecoder) { d.m.SetCurrentLine(nil) }
func (x *NoLine) encode(*binary.Writer)  {}

type ModuleProcessed struct {
	Entry
	Process string
}

func (x *ModuleProcessed) decode(d *fieldDecoder) {
	x.Process = d.str()
	if d.err != nil {
		return
	}
	d.m.processes = append(d.m.processes, x.Process)
}

func (x *ModuleProcessed) encode(w *binary.Writer) { w.WriteString(x.Process) }
