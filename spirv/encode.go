package spirv

import (
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Encode serializes the module in the byte order it was decoded from.
func (m *Module) Encode() ([]byte, error) {
	w, err := m.encode()
	if err != nil {
		return nil, err
	}
	return w.Bytes(m.order), nil
}

// EncodeWords returns the header followed by every entity in decode order.
// Forward placeholders are never emitted. A zero bound in the header is
// replaced by one past the largest id.
func (m *Module) EncodeWords() ([]uint32, error) {
	w, err := m.encode()
	if err != nil {
		return nil, err
	}
	return w.Words(), nil
}

func (m *Module) encode() (*binary.Writer, error) {
	h := m.header
	bound := h.Bound
	if bound == 0 {
		for id := range m.ids {
			if uint32(id) >= bound {
				bound = uint32(id) + 1
			}
		}
	}

	w := binary.NewWriter()
	w.WriteWords([]uint32{Magic, h.Version, h.Generator, bound, h.Schema})
	for _, e := range m.sequence {
		if e.Op() == OpForward {
			continue
		}
		if err := encodeEntity(w, e); err != nil {
			return nil, err
		}
	}
	return w, nil
}
