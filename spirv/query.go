package spirv

import "iter"

// Graph is the read-only view of a decoded module used by consumers that
// lower it further. They never mutate the graph.
type Graph interface {
	Lookup(id Id) (Entity, error)
	Decoration(id Id, kind Decoration, index int) (uint32, bool)
	AllDecorations(id Id, kind Decoration, index int) []uint32
	Name(id Id) string
	Entities() iter.Seq[Entity]
}

var _ Graph = (*Module)(nil)
