package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// typed is implemented by entities that carry a result type.
type typed interface {
	resultType() (Id, bool)
}

// Undef is an undefined value of a type.
type Undef struct {
	Entry
	ResultType Id
}

func (x *Undef) resultType() (Id, bool) { return x.ResultType, true }

func (x *Undef) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
}

func (x *Undef) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
}

// ConstantBool is a boolean constant. The value lives in the opcode.
type ConstantBool struct {
	Entry
	ResultType Id
}

// Value returns the constant's truth value.
func (x *ConstantBool) Value() bool {
	return x.opcode == OpConstantTrue || x.opcode == OpSpecConstantTrue
}

// Spec reports whether the constant is a specialization constant.
func (x *ConstantBool) Spec() bool {
	return x.opcode == OpSpecConstantTrue || x.opcode == OpSpecConstantFalse
}

func (x *ConstantBool) resultType() (Id, bool) { return x.ResultType, true }

func (x *ConstantBool) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
}

func (x *ConstantBool) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
}

// Constant is a scalar numeric constant, low-order word first.
type Constant struct {
	Entry
	Value      []uint32
	ResultType Id
}

// Spec reports whether the constant is a specialization constant.
func (x *Constant) Spec() bool { return x.opcode == OpSpecConstant }

// Uint64 returns the value zero-extended to 64 bits.
func (x *Constant) Uint64() uint64 {
	var v uint64
	if len(x.Value) > 0 {
		v = uint64(x.Value[0])
	}
	if len(x.Value) > 1 {
		v |= uint64(x.Value[1]) << 32
	}
	return v
}

func (x *Constant) resultType() (Id, bool) { return x.ResultType, true }

func (x *Constant) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
	x.Value = d.rest()
}

func (x *Constant) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
	w.WriteWords(x.Value)
}

type ConstantComposite struct {
	Entry
	Constituents []Id
	ResultType   Id
}

// Spec reports whether the constant is a specialization constant.
func (x *ConstantComposite) Spec() bool { return x.opcode == OpSpecConstantComposite }

func (x *ConstantComposite) resultType() (Id, bool) { return x.ResultType, true }

func (x *ConstantComposite) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
	x.Constituents = d.ids()
}

func (x *ConstantComposite) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
	writeIDs(w, x.Constituents)
}

type ConstantNull struct {
	Entry
	ResultType Id
}

func (x *ConstantNull) resultType() (Id, bool) { return x.ResultType, true }

func (x *ConstantNull) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
}

func (x *ConstantNull) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
}

// Variable is a global or function-local variable.
// Initializer is NoID when the instruction has none.
type Variable struct {
	Entry
	ResultType  Id
	Initializer Id
	Storage     StorageClass
}

func (x *Variable) resultType() (Id, bool) { return x.ResultType, true }

func (x *Variable) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
	x.Storage = StorageClass(d.word())
	if d.more() {
		x.Initializer = d.id()
	}
}

func (x *Variable) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Storage))
	if x.Initializer.IsValid() {
		w.WriteWord(uint32(x.Initializer))
	}
}

// Function opens a function definition or declaration. Parameters,
// blocks and body instructions are collected as they are decoded, up to
// the matching OpFunctionEnd.
type Function struct {
	Entry
	Parameters     []*FunctionParameter
	Blocks         []*Label
	Body           []Entity
	executionModes []*ExecutionMode
	ResultType     Id
	FunctionType   Id
	Control        uint32
}

// ExecutionModes returns the execution modes attached to the function.
func (x *Function) ExecutionModes() []*ExecutionMode { return x.executionModes }

// ExecutionMode returns the first execution mode of kind.
func (x *Function) ExecutionMode(mode ExecutionModeKind) (*ExecutionMode, bool) {
	for _, em := range x.executionModes {
		if em.Mode == mode {
			return em, true
		}
	}
	return nil, false
}

// IsDeclaration reports whether the function has no body.
func (x *Function) IsDeclaration() bool { return len(x.Blocks) == 0 }

func (x *Function) addExecutionMode(em *ExecutionMode) {
	x.executionModes = addExecutionMode(x.executionModes, em)
}

func (x *Function) resultType() (Id, bool) { return x.ResultType, true }

func (x *Function) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
	x.Control = d.word()
	x.FunctionType = d.id()
}

func (x *Function) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
	w.WriteWord(x.Control)
	w.WriteWord(uint32(x.FunctionType))
}

type FunctionParameter struct {
	Entry
	Function   *Function
	ResultType Id
}

func (x *FunctionParameter) resultType() (Id, bool) { return x.ResultType, true }

func (x *FunctionParameter) decode(d *fieldDecoder) {
	x.ResultType = d.id()
	x.id = d.id()
}

func (x *FunctionParameter) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.ResultType))
	w.WriteWord(uint32(x.id))
}

type FunctionEnd struct{ Entry }

func (*FunctionEnd) decode(*fieldDecoder)  {}
func (*FunctionEnd) encode(*binary.Writer) {}

// Label starts a basic block.
type Label struct {
	Entry
	Function *Function
}

func (x *Label) decode(d *fieldDecoder)  { x.id = d.id() }
func (x *Label) encode(w *binary.Writer) { w.WriteWord(uint32(x.id)) }
