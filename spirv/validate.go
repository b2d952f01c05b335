package spirv

import (
	"fmt"
	"sort"

	"github.com/wippyai/spirv-graph/errors"
)

// Validate checks the decoded graph for structural validity. Every
// violation is collected, together with diagnostics recorded during
// decoding, into a single *errors.ValidationErrors. It returns nil when the
// module is clean.
func (m *Module) Validate() error {
	v := &validator{m: m}
	v.errs = append(v.errs, m.diagnostics...)

	v.validateForwards()
	v.validateIDBound()
	v.validateMemoryModel()
	for e := range m.Entities() {
		v.validateEntity(e)
	}
	v.validateDecorations()

	return errors.NewValidationErrors(v.errs)
}

type validator struct {
	m    *Module
	errs []*errors.Error
}

func (v *validator) report(e Entity, rule, format string, args ...any) {
	var id uint32
	hasID := false
	op := ""
	if e != nil {
		id, hasID, op = uint32(e.ID()), e.HasID(), e.Op().String()
	}
	v.errs = append(v.errs, errors.Validation(id, hasID, op, rule, fmt.Sprintf(format, args...)))
}

func (v *validator) validateForwards() {
	for _, id := range v.m.Forwards() {
		v.report(v.m.ids[id], "unresolved-forward", "id %s is referenced but never defined", id)
	}
}

func (v *validator) validateIDBound() {
	bound := v.m.header.Bound
	if bound == 0 {
		return
	}
	for _, id := range v.m.IDs() {
		if uint32(id) >= bound {
			v.report(v.m.ids[id], "id-bound", "id %s is not below the header bound %d", id, bound)
		}
	}
}

func (v *validator) validateMemoryModel() {
	mm := v.m.memoryModel
	if mm == nil {
		return
	}
	if !mm.Addressing.isValid() {
		v.report(mm, "memory-model", "unknown addressing model %d", uint32(mm.Addressing))
	}
	if !mm.Memory.isValid() {
		v.report(mm, "memory-model", "unknown memory model %d", uint32(mm.Memory))
	}
}

func (v *validator) validateEntity(e Entity) {
	switch x := e.(type) {
	case *Line:
		if x.Info == nil {
			v.report(e, "line-file", "line has no location")
			return
		}
		if _, err := LookupAs[*String](v.m, x.Info.File); err != nil {
			v.report(e, "line-file", "file %s is not an OpString", x.Info.File)
		}
	case *MemberName:
		st, err := LookupAs[*TypeStruct](v.m, x.Target)
		if err != nil {
			v.report(e, "member-name-target", "target %s is not a struct type", x.Target)
			return
		}
		if int(x.Member) >= st.MemberCount() {
			v.report(e, "member-name-index", "member %d out of range for %s with %d members",
				x.Member, x.Target, st.MemberCount())
		}
	case *EntryPoint:
		if _, err := LookupAs[*Function](v.m, x.Target); err != nil {
			v.report(e, "execution-mode-target", "entry point %q targets %s, which is not a function", x.Label, x.Target)
		}
	case *ExecutionMode:
		v.validateExecutionMode(x)
	case *ExtInstImport:
		if x.Set == "" {
			v.report(e, "ext-inst-import", "extended instruction set name is empty")
		}
	case *TypeVector:
		if x.Count < 2 {
			v.report(e, "vector-size", "vector has %d components, want at least 2", x.Count)
		}
	case *TypeStruct:
		for i, member := range x.Members {
			if v.defined(member) && !v.isType(member) {
				v.report(e, "struct-member-type", "member %d references %s, which is not a type", i, member)
			}
		}
	}

	for _, id := range operandIDs(e) {
		if !v.defined(id) {
			v.report(e, "undefined-id", "operand %s is never defined", id)
		}
	}

	if t, ok := e.(typed); ok {
		if rt, has := t.resultType(); has {
			switch {
			case !v.defined(rt):
				v.report(e, "undefined-id", "result type %s is never defined", rt)
			case !v.isType(rt):
				v.report(e, "result-type", "result type %s is not a type", rt)
			}
		}
	}
}

// operandIDs returns the ids e names in its operand fields. Targets of
// annotations are left out since they always pass through a placeholder.
func operandIDs(e Entity) []Id {
	switch x := e.(type) {
	case *TypeVector:
		return []Id{x.Component}
	case *TypeMatrix:
		return []Id{x.Column}
	case *TypeImage:
		return []Id{x.SampledType}
	case *TypeSampledImage:
		return []Id{x.Image}
	case *TypeArray:
		return []Id{x.Element, x.Length}
	case *TypeRuntimeArray:
		return []Id{x.Element}
	case *TypeStruct:
		return x.Members
	case *TypePointer:
		return []Id{x.Pointee}
	case *TypeFunction:
		return append([]Id{x.Return}, x.Params...)
	case *ConstantComposite:
		return x.Constituents
	case *Variable:
		if x.Initializer.IsValid() {
			return []Id{x.Initializer}
		}
	case *Function:
		return []Id{x.FunctionType}
	case *EntryPoint:
		return x.Interface
	case *Source:
		if x.File.IsValid() {
			return []Id{x.File}
		}
	}
	return nil
}

func (v *validator) defined(id Id) bool {
	_, ok := v.m.ids[id]
	return ok
}

func (v *validator) validateExecutionMode(em *ExecutionMode) {
	if _, err := LookupAs[*Function](v.m, em.Target); err != nil {
		v.report(em, "execution-mode-target", "mode %d targets %s, which is not a function", uint32(em.Mode), em.Target)
	}
	if want := executionModeLiterals(em.Mode); want >= 0 && len(em.Literals) != want {
		v.report(em, "execution-mode-literals", "mode %d takes %d literals, got %d", uint32(em.Mode), want, len(em.Literals))
	}
}

// isType reports whether id names a type. An unresolved OpTypeForwardPointer
// target counts, since unresolved-forward reports it separately.
func (v *validator) isType(id Id) bool {
	e, ok := v.m.ids[id]
	if !ok {
		return false
	}
	if _, ok := e.(Type); ok {
		return true
	}
	if x, ok := e.(*Instruction); ok && x.Info().Class == ClassType {
		return true
	}
	_, declared := v.m.forwardPointers[id]
	_, isForward := e.(*Forward)
	return declared && isForward
}

func (v *validator) validateDecorations() {
	for _, id := range v.m.IDs() {
		e := v.m.ids[id]
		if _, ok := e.(*Forward); ok {
			continue
		}
		ent := e.entry()

		if len(ent.memberDecorates) > 0 {
			if _, ok := e.(*TypeStruct); !ok {
				v.report(e, "member-decoration-target", "member decorations on a non-struct entity")
			}
		}

		if e.Decorated(DecorationLinkageAttributes) {
			switch e.(type) {
			case *Function, *Variable:
			default:
				v.report(e, "linkage-target", "linkage attributes apply only to functions and variables")
			}
		}

		for _, kind := range e.DecorationKinds() {
			if n, ok := literalCountsAgree(ent.decorates[kind]); !ok {
				v.report(e, "decoration-literal-count", "instances of %s disagree on literal count (first has %d)", kind, n)
			}
		}
		for _, key := range sortedMemberKeys(ent.memberDecorates) {
			if n, ok := memberLiteralCountsAgree(ent.memberDecorates[key]); !ok {
				v.report(e, "decoration-literal-count", "instances of %s on member %d disagree on literal count (first has %d)",
					key.kind, key.member, n)
			}
		}
	}
}

func literalCountsAgree(decs []*Decorate) (int, bool) {
	n := len(decs[0].Literals)
	for _, dec := range decs[1:] {
		if len(dec.Literals) != n {
			return n, false
		}
	}
	return n, true
}

func memberLiteralCountsAgree(decs []*MemberDecorate) (int, bool) {
	n := len(decs[0].Literals)
	for _, dec := range decs[1:] {
		if len(dec.Literals) != n {
			return n, false
		}
	}
	return n, true
}

func sortedMemberKeys(m map[memberKey][]*MemberDecorate) []memberKey {
	keys := make([]memberKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].member != keys[j].member {
			return keys[i].member < keys[j].member
		}
		return keys[i].kind < keys[j].kind
	})
	return keys
}
