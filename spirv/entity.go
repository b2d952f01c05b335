package spirv

import (
	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Entity is one decoded instruction or object in a module graph.
//
// The set of implementations is closed: every variant embeds Entry and
// decodes its own operands.
type Entity interface {
	Op() Op
	ID() Id
	HasID() bool
	WordCount() uint32
	Name() string
	SetName(name string)
	Module() *Module
	Line() *LineInfo

	AddDecoration(kind Decoration, literals ...uint32) *Decorate
	AddMemberDecoration(member uint32, kind Decoration, literals ...uint32) *MemberDecorate
	Decorated(kind Decoration) bool
	HasDecoration(kind Decoration, index int) (uint32, bool)
	HasMemberDecoration(member uint32, kind Decoration, index int) (uint32, bool)
	AllDecorations(kind Decoration, index int) []uint32
	DecorationString(kind Decoration) (string, bool)
	Decorations(kind Decoration) []*Decorate
	DecorationKinds() []Decoration
	MemberDecorations(member uint32, kind Decoration) []*MemberDecorate
	MemberDecorationString(member uint32, kind Decoration) (string, bool)
	DecoratedMembers() []uint32
	MemberDecorationKinds(member uint32) []Decoration
	EraseDecoration(kind Decoration) bool
	EraseMemberDecoration(member uint32, kind Decoration) bool
	MemberName(member uint32) (string, bool)

	entry() *Entry
	decode(d *fieldDecoder)
	encode(w *binary.Writer)
}

// Entry holds the state shared by every entity variant.
type Entry struct {
	module          *Module
	line            *LineInfo
	decorates       map[Decoration][]*Decorate
	memberDecorates map[memberKey][]*MemberDecorate
	memberNames     map[uint32]string
	name            string
	id              Id
	wordCount       uint32
	opcode          Op
}

type memberKey struct {
	member uint32
	kind   Decoration
}

func (e *Entry) Op() Op            { return e.opcode }
func (e *Entry) ID() Id            { return e.id }
func (e *Entry) HasID() bool       { return e.id.IsValid() }
func (e *Entry) WordCount() uint32 { return e.wordCount }
func (e *Entry) Name() string      { return e.name }
func (e *Entry) Module() *Module   { return e.module }

// Line returns the line record active when the entity was decoded, or nil.
func (e *Entry) Line() *LineInfo { return e.line }

// SetName sets the debug name.
func (e *Entry) SetName(name string) { e.name = name }

// SetID assigns the result id of a programmatically built entity.
// It must be called before the entity is added to a module.
func (e *Entry) SetID(id Id) { e.id = id }

// MemberName returns the name given to a struct member by OpMemberName.
func (e *Entry) MemberName(member uint32) (string, bool) {
	name, ok := e.memberNames[member]
	return name, ok
}

func (e *Entry) setMemberName(member uint32, name string) {
	if e.memberNames == nil {
		e.memberNames = make(map[uint32]string)
	}
	e.memberNames[member] = name
}

func (e *Entry) entry() *Entry { return e }

func (e *Entry) setModule(m *Module) error {
	if e.module == m {
		return nil
	}
	if e.module != nil {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Op(e.opcode.String()).
			Detail("entity is already owned by another module").
			Build()
	}
	e.module = m
	return nil
}

// takeAnnotations moves everything attached to a forward placeholder onto e.
// Annotations on the placeholder come first since they were decoded first.
func (e *Entry) takeAnnotations(from *Entry) {
	if from.name != "" {
		e.name = from.name
	}

	for kind, decs := range from.decorates {
		if e.decorates == nil {
			e.decorates = make(map[Decoration][]*Decorate)
		}
		e.decorates[kind] = append(decs, e.decorates[kind]...)
	}
	for key, decs := range from.memberDecorates {
		if e.memberDecorates == nil {
			e.memberDecorates = make(map[memberKey][]*MemberDecorate)
		}
		e.memberDecorates[key] = append(decs, e.memberDecorates[key]...)
	}
	for member, name := range from.memberNames {
		if _, ok := e.memberNames[member]; !ok {
			e.setMemberName(member, name)
		}
	}

	from.decorates = nil
	from.memberDecorates = nil
	from.memberNames = nil
}

// LineInfo is a source location shared by every entity decoded while it is
// the module's current line.
type LineInfo struct {
	File   Id
	Line   uint32
	Column uint32
}

// Forward is a placeholder for an id referenced before its definition.
// It collects annotations until the definition arrives.
type Forward struct {
	Entry
	executionModes []*ExecutionMode
}

// ExecutionModes returns the execution modes attached while unresolved.
func (f *Forward) ExecutionModes() []*ExecutionMode { return f.executionModes }

func (f *Forward) addExecutionMode(em *ExecutionMode) {
	f.executionModes = addExecutionMode(f.executionModes, em)
}

func (f *Forward) decode(d *fieldDecoder) {
	d.fail(errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Op(OpForward.String()).
		Detail("forward placeholders cannot be decoded").
		Build())
}

func (f *Forward) encode(*binary.Writer) {}

func newForward(m *Module, id Id) *Forward {
	f := &Forward{}
	f.opcode = OpForward
	f.id = id
	f.module = m
	return f
}

// executionModeTarget is implemented by entities that accept execution modes.
type executionModeTarget interface {
	addExecutionMode(em *ExecutionMode)
}

func addExecutionMode(modes []*ExecutionMode, em *ExecutionMode) []*ExecutionMode {
	if !isMergedMode(em.Mode) {
		for i, existing := range modes {
			if existing.Mode == em.Mode {
				modes[i] = em
				return modes
			}
		}
	}
	return append(modes, em)
}
