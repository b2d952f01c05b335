package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Name assigns a debug name to a target id.
type Name struct {
	Entry
	Value  string
	Target Id
}

func (x *Name) decode(d *fieldDecoder) {
	x.Target = d.id()
	x.Value = d.str()
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Target).SetName(x.Value)
}

func (x *Name) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Target))
	w.WriteString(x.Value)
}

// MemberName assigns a debug name to one member of a struct type.
type MemberName struct {
	Entry
	Value  string
	Target Id
	Member uint32
}

func (x *MemberName) decode(d *fieldDecoder) {
	x.Target = d.id()
	x.Member = d.word()
	x.Value = d.str()
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Target).entry().setMemberName(x.Member, x.Value)
}

func (x *MemberName) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Target))
	w.WriteWord(x.Member)
	w.WriteString(x.Value)
}

// EntryPoint declares a function as a shader or kernel entry.
type EntryPoint struct {
	Entry
	Label     string
	Interface []Id
	Target    Id
	Model     ExecutionModel
}

func (x *EntryPoint) decode(d *fieldDecoder) {
	x.Model = ExecutionModel(d.word())
	x.Target = d.id()
	x.Label = d.str()
	x.Interface = d.ids()
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Target).SetName(x.Label)
	d.m.entryPoints = append(d.m.entryPoints, x)
}

func (x *EntryPoint) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Model))
	w.WriteWord(uint32(x.Target))
	w.WriteString(x.Label)
	writeIDs(w, x.Interface)
}

// ExecutionMode attaches an execution mode to an entry point function.
// It covers OpExecutionMode and OpExecutionModeId.
type ExecutionMode struct {
	Entry
	Literals []uint32
	Target   Id
	Mode     ExecutionModeKind
}

func (x *ExecutionMode) decode(d *fieldDecoder) {
	x.Target = d.id()
	x.Mode = ExecutionModeKind(d.word())
	x.Literals = d.rest()
	if d.err != nil {
		return
	}
	if t, ok := d.m.GetOrCreateForward(x.Target).(executionModeTarget); ok {
		t.addExecutionMode(x)
	}
	d.m.executionModes = append(d.m.executionModes, x)
}

func (x *ExecutionMode) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Target))
	w.WriteWord(uint32(x.Mode))
	w.WriteWords(x.Literals)
}
