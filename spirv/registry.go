package spirv

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wippyai/spirv-graph/errors"
)

// Registry maps opcodes to entity constructors.
// Immutable after construction and safe for concurrent use.
type Registry struct {
	infos map[Op]*OpInfo
}

// NewRegistry builds a registry from an opcode table.
func NewRegistry(table []OpInfo) (*Registry, error) {
	r := &Registry{infos: make(map[Op]*OpInfo, len(table))}
	for i := range table {
		info := table[i]
		if info.Op == OpForward {
			return nil, errors.New(errors.PhaseRegistry, errors.KindInvalidData).
				Op(info.Name).
				Detail("opcode 0x%04x is reserved for forward placeholders", uint16(OpForward)).
				Build()
		}
		if info.Name == "" {
			return nil, errors.New(errors.PhaseRegistry, errors.KindInvalidData).
				Detail("opcode %d has no name", uint16(info.Op)).
				Build()
		}
		if prev, ok := r.infos[info.Op]; ok {
			return nil, errors.New(errors.PhaseRegistry, errors.KindInvalidData).
				Op(info.Name).
				Detail("opcode %d already registered as %s", uint16(info.Op), prev.Name).
				Build()
		}
		r.infos[info.Op] = &info
	}
	return r, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry built from DefaultSchema.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(schema)
		if err != nil {
			panic(fmt.Sprintf("spirv: built-in opcode table is corrupt: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Create returns a fresh, field-empty entity for op.
func (r *Registry) Create(op Op) (Entity, error) {
	info, ok := r.infos[op]
	if !ok {
		return nil, errors.UnsupportedOpcode(uint16(op), errors.NoOffset)
	}

	var e Entity
	if info.New != nil {
		e = info.New()
	} else {
		e = &Instruction{info: info}
	}
	e.entry().opcode = op
	return e, nil
}

// Info returns the schema entry for op.
func (r *Registry) Info(op Op) (OpInfo, bool) {
	info, ok := r.infos[op]
	if !ok {
		return OpInfo{}, false
	}
	return *info, true
}

// Ops returns every registered opcode in ascending order.
func (r *Registry) Ops() []Op {
	ops := make([]Op, 0, len(r.infos))
	for op := range r.infos {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Len returns the number of registered opcodes.
func (r *Registry) Len() int {
	return len(r.infos)
}
