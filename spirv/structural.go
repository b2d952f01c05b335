package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Capability declares a feature the module uses.
type Capability struct {
	Entry
	Kind CapabilityKind
}

func (x *Capability) decode(d *fieldDecoder) {
	x.Kind = CapabilityKind(d.word())
	if d.err != nil {
		return
	}
	d.m.capabilities = append(d.m.capabilities, x.Kind)
}

func (x *Capability) encode(w *binary.Writer) { w.WriteWord(uint32(x.Kind)) }

type Extension struct {
	Entry
	Value string
}

func (x *Extension) decode(d *fieldDecoder) {
	x.Value = d.str()
	if d.err != nil {
		return
	}
	d.m.extensions = append(d.m.extensions, x.Value)
}

func (x *Extension) encode(w *binary.Writer) { w.WriteString(x.Value) }

// ExtInstImport imports an extended instruction set by name.
type ExtInstImport struct {
	Entry
	Set string
}

func (x *ExtInstImport) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Set = d.str()
}

func (x *ExtInstImport) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteString(x.Set)
}

type MemoryModel struct {
	Entry
	Addressing AddressingModel
	Memory     MemoryModelKind
}

func (x *MemoryModel) decode(d *fieldDecoder) {
	x.Addressing = AddressingModel(d.word())
	x.Memory = MemoryModelKind(d.word())
	if d.err != nil {
		return
	}
	d.m.memoryModel = x
}

func (x *MemoryModel) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Addressing))
	w.WriteWord(uint32(x.Memory))
}
