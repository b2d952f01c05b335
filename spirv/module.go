package spirv

import (
	gobinary "encoding/binary"
	"fmt"
	"iter"
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-graph/errors"
)

// Header is the five-word module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// VersionString formats the version word as major.minor.
func (h Header) VersionString() string {
	return fmt.Sprintf("%d.%d", h.Version>>16&0xFF, h.Version>>8&0xFF)
}

// Module owns every entity decoded from one stream.
//
// A Module is not safe for concurrent mutation. Once decoding finishes it
// is only read, and may then be shared freely.
type Module struct {
	ids             map[Id]Entity
	order           gobinary.ByteOrder
	forwardPointers map[Id]*TypeForwardPointer
	line            *LineInfo
	source          *Source
	memoryModel     *MemoryModel
	curFunc         *Function
	sequence        []Entity
	entryPoints     []*EntryPoint
	executionModes  []*ExecutionMode
	capabilities    []CapabilityKind
	extensions      []string
	sourceExts      []string
	processes       []string
	diagnostics     []*errors.Error
	header          Header
}

// NewModule returns an empty module with a version 1.6 header.
func NewModule() *Module {
	return &Module{
		ids:             make(map[Id]Entity),
		forwardPointers: make(map[Id]*TypeForwardPointer),
		order:           gobinary.LittleEndian,
		header:          Header{Magic: Magic, Version: Version16},
	}
}

// GetOrCreateForward returns the entity for id, inserting a forward
// placeholder when none exists yet.
func (m *Module) GetOrCreateForward(id Id) Entity {
	if e, ok := m.ids[id]; ok {
		return e
	}
	f := newForward(m, id)
	m.ids[id] = f
	return f
}

// RegisterResolved inserts a fully decoded entity under its id. Annotations
// collected by a forward placeholder for the same id move onto e.
func (m *Module) RegisterResolved(e Entity) error {
	id := e.ID()
	if !id.IsValid() {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Op(e.Op().String()).
			Detail("entity has no id").
			Build()
	}
	if _, ok := e.(*Forward); ok {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Op(e.Op().String()).
			ID(uint32(id)).
			Detail("forward placeholders cannot be registered as definitions").
			Build()
	}

	if existing, ok := m.ids[id]; ok {
		fwd, isForward := existing.(*Forward)
		if !isForward {
			if existing == e {
				return nil
			}
			return errors.DuplicateDefinition(uint32(id), e.Op().String())
		}
		e.entry().takeAnnotations(&fwd.Entry)
		if t, ok := e.(executionModeTarget); ok {
			for _, em := range fwd.executionModes {
				t.addExecutionMode(em)
			}
		}
		fwd.executionModes = nil
	}
	m.ids[id] = e
	return nil
}

// Add adopts e into the module: it records the current line, registers the
// id if there is one and appends e to the decode-order sequence.
func (m *Module) Add(e Entity) error {
	ent := e.entry()
	if err := ent.setModule(m); err != nil {
		return err
	}
	if op := e.Op(); op != OpLine && op != OpNoLine {
		ent.line = m.line
	}
	if e.HasID() {
		if err := m.RegisterResolved(e); err != nil {
			return err
		}
	}
	m.sequence = append(m.sequence, e)
	m.track(e)
	return nil
}

// track maintains the function currently being decoded and ends the line
// cursor at block and function boundaries.
func (m *Module) track(e Entity) {
	switch x := e.(type) {
	case *Function:
		m.curFunc = x
	case *FunctionParameter:
		if m.curFunc != nil {
			x.Function = m.curFunc
			m.curFunc.Parameters = append(m.curFunc.Parameters, x)
		}
	case *Label:
		if m.curFunc != nil {
			x.Function = m.curFunc
			m.curFunc.Blocks = append(m.curFunc.Blocks, x)
			m.curFunc.Body = append(m.curFunc.Body, x)
		}
	case *FunctionEnd:
		m.curFunc = nil
		m.line = nil
	default:
		if m.curFunc != nil && len(m.curFunc.Blocks) > 0 {
			m.curFunc.Body = append(m.curFunc.Body, e)
		}
		if e.Op().IsEndOfBlock() {
			m.line = nil
		}
	}
}

// SetCurrentLine sets the line attached to entities added from now on.
// A nil line clears the cursor.
func (m *Module) SetCurrentLine(line *LineInfo) { m.line = line }

// CurrentLine returns the active line cursor, or nil.
func (m *Module) CurrentLine() *LineInfo { return m.line }

// Lookup returns the entity registered for id. The result may be a
// forward placeholder while decoding is still in progress.
func (m *Module) Lookup(id Id) (Entity, error) {
	e, ok := m.ids[id]
	if !ok {
		return nil, errors.UnknownID(uint32(id))
	}
	return e, nil
}

// LookupAs returns the entity for id as variant T. A forward placeholder
// never satisfies T.
func LookupAs[T Entity](m *Module, id Id) (T, error) {
	var zero T
	e, err := m.Lookup(id)
	if err != nil {
		return zero, err
	}
	if _, ok := e.(*Forward); ok {
		return zero, errors.TypeMismatch(uint32(id), fmt.Sprintf("%T", zero), OpForward.String())
	}
	t, ok := e.(T)
	if !ok {
		return zero, errors.TypeMismatch(uint32(id), fmt.Sprintf("%T", zero), e.Op().String())
	}
	return t, nil
}

// ResultType returns the result type id of the value named by id.
func (m *Module) ResultType(id Id) (Id, error) {
	e, err := m.Lookup(id)
	if err != nil {
		return NoID, err
	}
	if _, ok := e.(*Forward); ok {
		return NoID, errors.Unresolved(uint32(id))
	}
	if t, ok := e.(typed); ok {
		if rt, has := t.resultType(); has {
			return rt, nil
		}
	}
	return NoID, errors.TypeMismatch(uint32(id), "typed value", e.Op().String())
}

// Entities yields every entity in decode order, including those without ids.
func (m *Module) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range m.sequence {
			if !yield(e) {
				return
			}
		}
	}
}

// IDs returns every registered id in ascending order.
func (m *Module) IDs() []Id {
	ids := make([]Id, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of entities in decode order.
func (m *Module) Len() int { return len(m.sequence) }

// Forwards returns the ids that are still forward placeholders, ascending.
func (m *Module) Forwards() []Id {
	var ids []Id
	for id, e := range m.ids {
		if _, ok := e.(*Forward); ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Name returns the debug name of id, or "" when it is unknown or unnamed.
func (m *Module) Name(id Id) string {
	if e, ok := m.ids[id]; ok {
		return e.Name()
	}
	return ""
}

// Decoration returns literal index of the first decoration of kind on id.
func (m *Module) Decoration(id Id, kind Decoration, index int) (uint32, bool) {
	e, ok := m.ids[id]
	if !ok {
		return 0, false
	}
	return e.HasDecoration(kind, index)
}

// AllDecorations returns the distinct literal values at index across every
// decoration of kind on id.
func (m *Module) AllDecorations(id Id, kind Decoration, index int) []uint32 {
	e, ok := m.ids[id]
	if !ok {
		return nil
	}
	return e.AllDecorations(kind, index)
}

func (m *Module) Header() Header                   { return m.header }
func (m *Module) EntryPoints() []*EntryPoint       { return m.entryPoints }
func (m *Module) ExecutionModes() []*ExecutionMode { return m.executionModes }
func (m *Module) Capabilities() []CapabilityKind   { return m.capabilities }
func (m *Module) Extensions() []string             { return m.extensions }
func (m *Module) SourceExtensions() []string       { return m.sourceExts }
func (m *Module) Processes() []string              { return m.processes }

// Source returns the module's OpSource record, or nil.
func (m *Module) Source() *Source { return m.source }

// HasCapability reports whether the module declares capability c.
func (m *Module) HasCapability(c CapabilityKind) bool {
	for _, have := range m.capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// AddressingModel returns the declared addressing model.
func (m *Module) AddressingModel() AddressingModel {
	if m.memoryModel == nil {
		return AddressingModelLogical
	}
	return m.memoryModel.Addressing
}

// MemoryModel returns the declared memory model.
func (m *Module) MemoryModel() MemoryModelKind {
	if m.memoryModel == nil {
		return MemoryModelSimple
	}
	return m.memoryModel.Memory
}

// ExtInstSet returns the name of the extended instruction set imported as id.
func (m *Module) ExtInstSet(id Id) (string, bool) {
	imp, err := LookupAs[*ExtInstImport](m, id)
	if err != nil {
		return "", false
	}
	return imp.Set, true
}

// Diagnostics returns the recoverable anomalies recorded while decoding.
func (m *Module) Diagnostics() []*errors.Error { return m.diagnostics }

func (m *Module) diagnose(err *errors.Error) {
	m.diagnostics = append(m.diagnostics, err)
	Logger().Warn("spirv diagnostic",
		zap.String("rule", err.Rule),
		zap.String("detail", err.Detail),
	)
}
