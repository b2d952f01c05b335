package spirv

import (
	"sort"

	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Decorate attaches a decoration to a target id.
// It covers OpDecorate, OpDecorateId and OpDecorateString.
type Decorate struct {
	Entry
	Literals []uint32
	Target   Id
	Kind     Decoration
}

func (x *Decorate) decode(d *fieldDecoder) {
	x.Target = d.id()
	x.Kind = Decoration(d.word())
	x.Literals = d.rest()
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Target).entry().addDecorate(x)
}

func (x *Decorate) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Target))
	w.WriteWord(uint32(x.Kind))
	w.WriteWords(x.Literals)
}

// LinkageName returns the symbol name of a LinkageAttributes decoration.
func (x *Decorate) LinkageName() (string, bool) {
	if x.Kind != DecorationLinkageAttributes || len(x.Literals) < 2 {
		return "", false
	}
	return LiteralString(x.Literals[:len(x.Literals)-1])
}

// LinkageType returns the trailing linkage type literal.
func (x *Decorate) LinkageType() LinkageType {
	if x.Kind != DecorationLinkageAttributes || len(x.Literals) < 2 {
		return LinkageInternal
	}
	return LinkageType(x.Literals[len(x.Literals)-1])
}

// MemberDecorate attaches a decoration to one member of a struct type.
// It covers OpMemberDecorate and OpMemberDecorateString.
type MemberDecorate struct {
	Entry
	Literals []uint32
	Target   Id
	Member   uint32
	Kind     Decoration
}

func (x *MemberDecorate) decode(d *fieldDecoder) {
	x.Target = d.id()
	x.Member = d.word()
	x.Kind = Decoration(d.word())
	x.Literals = d.rest()
	if d.err != nil {
		return
	}
	d.m.GetOrCreateForward(x.Target).entry().addMemberDecorate(x)
}

func (x *MemberDecorate) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Target))
	w.WriteWord(x.Member)
	w.WriteWord(uint32(x.Kind))
	w.WriteWords(x.Literals)
}

// DecorationGroup is a target that collects decorations for OpGroupDecorate.
type DecorationGroup struct {
	Entry
}

func (x *DecorationGroup) decode(d *fieldDecoder) {
	x.id = d.id()
}

func (x *DecorationGroup) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.id))
}

// GroupDecorate copies every decoration of a group onto each target.
type GroupDecorate struct {
	Entry
	Targets []Id
	Group   Id
}

func (x *GroupDecorate) decode(d *fieldDecoder) {
	x.Group = d.id()
	x.Targets = d.ids()
	if d.err != nil {
		return
	}
	group := d.m.GetOrCreateForward(x.Group).entry()
	for _, target := range x.Targets {
		t := d.m.GetOrCreateForward(target).entry()
		for _, kind := range group.DecorationKinds() {
			for _, dec := range group.decorates[kind] {
				t.addDecorate(copyDecorate(dec, target))
			}
		}
	}
}

func (x *GroupDecorate) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Group))
	writeIDs(w, x.Targets)
}

// MemberRef names one member of a struct type.
type MemberRef struct {
	Target Id
	Member uint32
}

// GroupMemberDecorate copies every decoration of a group onto struct members.
type GroupMemberDecorate struct {
	Entry
	Targets []MemberRef
	Group   Id
}

func (x *GroupMemberDecorate) decode(d *fieldDecoder) {
	x.Group = d.id()
	rest := d.rest()
	if d.err != nil {
		return
	}
	if len(rest)%2 != 0 {
		d.fail(errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Op(x.opcode.String()).
			Detail("target list has %d words, want (id, member) pairs", len(rest)).
			Build())
		return
	}
	for i := 0; i < len(rest); i += 2 {
		x.Targets = append(x.Targets, MemberRef{Target: Id(rest[i]), Member: rest[i+1]})
	}

	group := d.m.GetOrCreateForward(x.Group).entry()
	for _, ref := range x.Targets {
		t := d.m.GetOrCreateForward(ref.Target).entry()
		for _, kind := range group.DecorationKinds() {
			for _, dec := range group.decorates[kind] {
				md := &MemberDecorate{Target: ref.Target, Member: ref.Member, Kind: dec.Kind}
				md.Literals = append([]uint32(nil), dec.Literals...)
				md.opcode = OpMemberDecorate
				md.module = d.m
				t.addMemberDecorate(md)
			}
		}
	}
}

func (x *GroupMemberDecorate) encode(w *binary.Writer) {
	w.WriteWord(uint32(x.Group))
	for _, ref := range x.Targets {
		w.WriteWord(uint32(ref.Target))
		w.WriteWord(ref.Member)
	}
}

func copyDecorate(dec *Decorate, target Id) *Decorate {
	c := &Decorate{Target: target, Kind: dec.Kind}
	c.Literals = append([]uint32(nil), dec.Literals...)
	c.opcode = OpDecorate
	c.module = dec.module
	return c
}

// Decoration store. Instances of one kind are kept in insertion order; the
// first instance answers literal lookups.

func (e *Entry) addDecorate(dec *Decorate) {
	if e.decorates == nil {
		e.decorates = make(map[Decoration][]*Decorate)
	}
	e.decorates[dec.Kind] = append(e.decorates[dec.Kind], dec)
	if name, ok := dec.LinkageName(); ok {
		e.name = name
	}
}

func (e *Entry) addMemberDecorate(dec *MemberDecorate) {
	if e.memberDecorates == nil {
		e.memberDecorates = make(map[memberKey][]*MemberDecorate)
	}
	key := memberKey{member: dec.Member, kind: dec.Kind}
	e.memberDecorates[key] = append(e.memberDecorates[key], dec)
}

// AddDecoration attaches a decoration outside of any decoded instruction.
// A LinkageAttributes decoration also renames the entity.
func (e *Entry) AddDecoration(kind Decoration, literals ...uint32) *Decorate {
	dec := &Decorate{Target: e.id, Kind: kind}
	dec.Literals = append([]uint32(nil), literals...)
	dec.opcode = OpDecorate
	dec.module = e.module
	dec.wordCount = uint32(3 + len(literals))
	e.addDecorate(dec)
	return dec
}

// AddMemberDecoration attaches a decoration to one member.
func (e *Entry) AddMemberDecoration(member uint32, kind Decoration, literals ...uint32) *MemberDecorate {
	dec := &MemberDecorate{Target: e.id, Member: member, Kind: kind}
	dec.Literals = append([]uint32(nil), literals...)
	dec.opcode = OpMemberDecorate
	dec.module = e.module
	dec.wordCount = uint32(4 + len(literals))
	e.addMemberDecorate(dec)
	return dec
}

// Decorated reports whether at least one decoration of kind is attached.
func (e *Entry) Decorated(kind Decoration) bool {
	return len(e.decorates[kind]) > 0
}

// HasDecoration returns literal index of the first decoration of kind.
// ok is false when the kind is absent or that instance has no such literal.
func (e *Entry) HasDecoration(kind Decoration, index int) (uint32, bool) {
	decs := e.decorates[kind]
	if len(decs) == 0 {
		return 0, false
	}
	return literalAt(decs[0].Literals, index)
}

// HasMemberDecoration returns literal index of the first decoration of kind on member.
func (e *Entry) HasMemberDecoration(member uint32, kind Decoration, index int) (uint32, bool) {
	decs := e.memberDecorates[memberKey{member: member, kind: kind}]
	if len(decs) == 0 {
		return 0, false
	}
	return literalAt(decs[0].Literals, index)
}

// AllDecorations returns the distinct values of literal index across every
// decoration of kind, in ascending order.
func (e *Entry) AllDecorations(kind Decoration, index int) []uint32 {
	seen := make(map[uint32]struct{})
	for _, dec := range e.decorates[kind] {
		if v, ok := literalAt(dec.Literals, index); ok {
			seen[v] = struct{}{}
		}
	}
	return sortedSet(seen)
}

// DecorationString decodes the literals of the first decoration of kind as a string.
func (e *Entry) DecorationString(kind Decoration) (string, bool) {
	decs := e.decorates[kind]
	if len(decs) == 0 {
		return "", false
	}
	return LiteralString(decs[0].Literals)
}

// MemberDecorationString decodes the literals of the first member decoration of kind.
func (e *Entry) MemberDecorationString(member uint32, kind Decoration) (string, bool) {
	decs := e.memberDecorates[memberKey{member: member, kind: kind}]
	if len(decs) == 0 {
		return "", false
	}
	return LiteralString(decs[0].Literals)
}

// Decorations returns every decoration of kind in insertion order.
func (e *Entry) Decorations(kind Decoration) []*Decorate {
	return e.decorates[kind]
}

// DecorationKinds returns the attached decoration kinds in ascending order.
func (e *Entry) DecorationKinds() []Decoration {
	kinds := make([]Decoration, 0, len(e.decorates))
	for kind := range e.decorates {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// MemberDecorations returns every decoration of kind on member in insertion order.
func (e *Entry) MemberDecorations(member uint32, kind Decoration) []*MemberDecorate {
	return e.memberDecorates[memberKey{member: member, kind: kind}]
}

// DecoratedMembers returns the member indices that carry decorations, ascending.
func (e *Entry) DecoratedMembers() []uint32 {
	seen := make(map[uint32]struct{})
	for key := range e.memberDecorates {
		seen[key.member] = struct{}{}
	}
	return sortedSet(seen)
}

// MemberDecorationKinds returns the decoration kinds on member, ascending.
func (e *Entry) MemberDecorationKinds(member uint32) []Decoration {
	var kinds []Decoration
	for key := range e.memberDecorates {
		if key.member == member {
			kinds = append(kinds, key.kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// EraseDecoration removes the most recently added decoration of kind.
func (e *Entry) EraseDecoration(kind Decoration) bool {
	decs := e.decorates[kind]
	if len(decs) == 0 {
		return false
	}
	if len(decs) == 1 {
		delete(e.decorates, kind)
	} else {
		e.decorates[kind] = decs[:len(decs)-1]
	}
	return true
}

// EraseMemberDecoration removes the most recently added decoration of kind on member.
func (e *Entry) EraseMemberDecoration(member uint32, kind Decoration) bool {
	key := memberKey{member: member, kind: kind}
	decs := e.memberDecorates[key]
	if len(decs) == 0 {
		return false
	}
	if len(decs) == 1 {
		delete(e.memberDecorates, key)
	} else {
		e.memberDecorates[key] = decs[:len(decs)-1]
	}
	return true
}

// LinkageTypeOf returns the linkage type of e, or LinkageInternal when it
// carries no LinkageAttributes decoration.
func LinkageTypeOf(e Entity) LinkageType {
	decs := e.Decorations(DecorationLinkageAttributes)
	if len(decs) == 0 {
		return LinkageInternal
	}
	return decs[0].LinkageType()
}

func literalAt(literals []uint32, index int) (uint32, bool) {
	if index < 0 || index >= len(literals) {
		return 0, false
	}
	return literals[index], true
}

func sortedSet(set map[uint32]struct{}) []uint32 {
	out := make([]uint32, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
