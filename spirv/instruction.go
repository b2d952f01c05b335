package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Instruction is any opcode without a dedicated variant. Its shape comes
// from the schema: an optional result type, an optional result id, then
// raw operand words.
type Instruction struct {
	Entry
	info       *OpInfo
	Operands   []uint32
	ResultType Id
}

// Info returns the schema entry the instruction was created from. An
// Instruction built outside a Registry falls back to the default schema
// entry for its opcode, or to a bare operand shape when there is none.
func (x *Instruction) Info() OpInfo {
	if x.info != nil {
		return *x.info
	}
	if info, ok := DefaultRegistry().Info(x.opcode); ok {
		return info
	}
	return OpInfo{Op: x.opcode, Name: x.opcode.String()}
}

func (x *Instruction) resultType() (Id, bool) { return x.ResultType, x.Info().HasType }

func (x *Instruction) decode(d *fieldDecoder) {
	info := x.Info()
	if info.HasType {
		x.ResultType = d.id()
	}
	if info.HasResult {
		x.id = d.id()
	}
	x.Operands = d.rest()
}

func (x *Instruction) encode(w *binary.Writer) {
	info := x.Info()
	if info.HasType {
		w.WriteWord(uint32(x.ResultType))
	}
	if info.HasResult {
		w.WriteWord(uint32(x.id))
	}
	w.WriteWords(x.Operands)
}
