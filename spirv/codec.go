package spirv

import (
	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// fieldDecoder reads the operands of one instruction. The first failure
// sticks and later reads return zero values.
type fieldDecoder struct {
	r   *binary.Reader
	m   *Module
	err error
}

func (d *fieldDecoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *fieldDecoder) word() uint32 {
	if d.err != nil {
		return 0
	}
	w, err := d.r.ReadWord()
	d.fail(err)
	return w
}

func (d *fieldDecoder) id() Id {
	return Id(d.word())
}

func (d *fieldDecoder) str() string {
	if d.err != nil {
		return ""
	}
	s, err := d.r.ReadString()
	d.fail(err)
	return s
}

// more reports whether operand words remain.
func (d *fieldDecoder) more() bool {
	return d.err == nil && d.r.Len() > 0
}

// rest consumes the remainder of the instruction as raw words.
func (d *fieldDecoder) rest() []uint32 {
	if d.err != nil {
		return nil
	}
	return d.r.ReadRemaining()
}

// ids consumes the remainder of the instruction as ids.
func (d *fieldDecoder) ids() []Id {
	words := d.rest()
	if len(words) == 0 {
		return nil
	}
	out := make([]Id, len(words))
	for i, w := range words {
		out[i] = Id(w)
	}
	return out
}

func writeIDs(w *binary.Writer, ids []Id) {
	for _, id := range ids {
		w.WriteWord(uint32(id))
	}
}

// EncodeEntity returns the full instruction words of e, header included.
func EncodeEntity(e Entity) ([]uint32, error) {
	w := binary.NewWriter()
	if err := encodeEntity(w, e); err != nil {
		return nil, err
	}
	return w.Words(), nil
}

func encodeEntity(w *binary.Writer, e Entity) error {
	body := binary.NewWriter()
	e.encode(body)
	wc := body.Len() + 1
	if wc > MaxWordCount {
		b := errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Op(e.Op().String()).
			Detail("instruction needs %d words, word count holds at most %d", wc, MaxWordCount)
		if e.HasID() {
			b.ID(uint32(e.ID()))
		}
		return b.Build()
	}
	w.WriteWord(uint32(wc)<<WordCountBits | uint32(e.Op()))
	w.WriteWords(body.Words())
	return nil
}

// LiteralString decodes a packed string from literal words.
func LiteralString(words []uint32) (string, bool) {
	s, _, err := binary.DecodeString(words)
	return s, err == nil
}

// StringLiterals packs s into literal words.
func StringLiterals(s string) []uint32 {
	return binary.StringWords(s)
}
