package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Type is implemented by every type declaration variant.
type Type interface {
	Entity
	isType()
}

type TypeVoid struct{ Entry }

func (x *TypeVoid) decode(d *fieldDecoder)  { x.id = d.id() }
func (x *TypeVoid) encode(w *binary.Writer) { w.WriteWord(uint32(x.id)) }

type TypeBool struct{ Entry }

func (x *TypeBool) decode(d *fieldDecoder)  { x.id = d.id() }
func (x *TypeBool) encode(w *binary.Writer) { w.WriteWord(uint32(x.id)) }

type TypeInt struct {
	Entry
	Width      uint32
	Signedness uint32
}

// Signed reports whether the integer type is signed.
func (x *TypeInt) Signed() bool { return x.Signedness != 0 }

func (x *TypeInt) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Width = d.word()
	x.Signedness = d.word()
}

func (x *TypeInt) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(x.Width)
	w.WriteWord(x.Signedness)
}

// TypeFloat is a floating-point type. Encoding is only present when the
// declaring instruction carries the optional FP encoding operand.
type TypeFloat struct {
	Entry
	Width       uint32
	Encoding    uint32
	HasEncoding bool
}

func (x *TypeFloat) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Width = d.word()
	if d.more() {
		x.Encoding = d.word()
		x.HasEncoding = true
	}
}

func (x *TypeFloat) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(x.Width)
	if x.HasEncoding {
		w.WriteWord(x.Encoding)
	}
}

type TypeVector struct {
	Entry
	Component Id
	Count     uint32
}

func (x *TypeVector) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Component = d.id()
	x.Count = d.word()
}

func (x *TypeVector) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Component))
	w.WriteWord(x.Count)
}

type TypeMatrix struct {
	Entry
	Column  Id
	Columns uint32
}

func (x *TypeMatrix) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Column = d.id()
	x.Columns = d.word()
}

func (x *TypeMatrix) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Column))
	w.WriteWord(x.Columns)
}

type TypeImage struct {
	Entry
	SampledType Id
	Dim         uint32
	Depth       uint32
	Arrayed     uint32
	MS          uint32
	Sampled     uint32
	Format      uint32
	Access      uint32
	HasAccess   bool
}

func (x *TypeImage) decode(d *fieldDecoder) {
	x.id = d.id()
	x.SampledType = d.id()
	x.Dim = d.word()
	x.Depth = d.word()
	x.Arrayed = d.word()
	x.MS = d.word()
	x.Sampled = d.word()
	x.Format = d.word()
	if d.more() {
		x.Access = d.word()
		x.HasAccess = true
	}
}

func (x *TypeImage) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.SampledType))
	w.WriteWords([]uint32{x.Dim, x.Depth, x.Arrayed, x.MS, x.Sampled, x.Format})
	if x.HasAccess {
		w.WriteWord(x.Access)
	}
}

type TypeSampler struct{ Entry }

func (x *TypeSampler) decode(d *fieldDecoder)  { x.id = d.id() }
func (x *TypeSampler) encode(w *binary.Writer) { w.WriteWord(uint32(x.id)) }

type TypeSampledImage struct {
	Entry
	Image Id
}

func (x *TypeSampledImage) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Image = d.id()
}

func (x *TypeSampledImage) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Image))
}

// TypeArray is a fixed-size array. Length is the id of a constant.
type TypeArray struct {
	Entry
	Element Id
	Length  Id
}

func (x *TypeArray) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Element = d.id()
	x.Length = d.id()
}

func (x *TypeArray) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Element))
	w.WriteWord(uint32(x.Length))
}

type TypeRuntimeArray struct {
	Entry
	Element Id
}

func (x *TypeRuntimeArray) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Element = d.id()
}

func (x *TypeRuntimeArray) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Element))
}

type TypeStruct struct {
	Entry
	Members []Id
}

// MemberCount returns the number of struct members.
func (x *TypeStruct) MemberCount() int { return len(x.Members) }

func (x *TypeStruct) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Members = d.ids()
}

func (x *TypeStruct) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	writeIDs(w, x.Members)
}

type TypePointer struct {
	Entry
	Pointee Id
	Storage StorageClass
}

func (x *TypePointer) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Storage = StorageClass(d.word())
	x.Pointee = d.id()
}

func (x *TypePointer) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Storage))
	w.WriteWord(uint32(x.Pointee))
}

type TypeFunction struct {
	Entry
	Params []Id
	Return Id
}

func (x *TypeFunction) decode(d *fieldDecoder) {
	x.id = d.id()
	x.Return = d.id()
	x.Params = d.ids()
}

func (x *TypeFunction) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
	w.WriteWord(uint32(x.Return))
	writeIDs(w, x.Params)
}

// TypeForwardPointer declares a pointer type ahead of its OpTypePointer.
// It has no result id of its own.
type TypeForwardPointer struct {
	Entry
	Pointer Id
	Storage StorageClass
}

func (x *TypeForwardPointer) decode(d *fieldDecoder) {
	x.Pointer = d.id()
	x.Storage = StorageClass(d.word())
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Pointer)
	d.m.forwardPointers[x.Pointer] = x
}

func (x *TypeForwardPointer) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Pointer))
	w.WriteWord(uint32(x.Storage))
}

func (*TypeVoid) isType()         {}
func (*TypeBool) isType()         {}
func (*TypeInt) isType()          {}
func (*TypeFloat) isType()        {}
func (*TypeVector) isType()       {}
func (*TypeMatrix) isType()       {}
func (*TypeImage) isType()        {}
func (*TypeSampler) isType()      {}
func (*TypeSampledImage) isType() {}
func (*TypeArray) isType()        {}
func (*TypeRuntimeArray) isType() {}
func (*TypeStruct) isType()       {}
func (*TypePointer) isType()      {}
func (*TypeFunction) isType()     {}
