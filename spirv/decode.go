package spirv

import (
	gobinary "encoding/binary"
	goerrors "errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv/internal/binary"
)

// Options configures a Decoder.
type Options struct {
	Registry    *Registry
	Concurrency int
	Validate    bool
}

// DefaultOptions returns the default decoder configuration.
func DefaultOptions() Options {
	return Options{
		Registry:    DefaultRegistry(),
		Validate:    true,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Decoder turns word streams into modules. A Decoder holds no per-stream
// state and may decode several streams at once.
type Decoder struct {
	registry *Registry
	options  Options
}

// NewDecoder creates a decoder. A nil Registry selects DefaultRegistry.
func NewDecoder(opts Options) *Decoder {
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Decoder{registry: opts.Registry, options: opts}
}

// ParseModule decodes a SPIR-V binary with the default registry.
func ParseModule(data []byte) (*Module, error) {
	return NewDecoder(Options{}).Decode(data)
}

// ParseModuleValidate decodes a SPIR-V binary and validates it.
// This is a convenience function combining ParseModule and Validate.
func ParseModuleValidate(data []byte) (*Module, error) {
	return NewDecoder(Options{Validate: true}).Decode(data)
}

// Decode decodes one module. Decoding stops at the first malformed
// instruction. When validation is enabled its violations are returned as
// *errors.ValidationErrors and the module is discarded.
func (d *Decoder) Decode(data []byte) (*Module, error) {
	m, err := d.decode(data)
	if err != nil {
		return nil, err
	}
	if d.options.Validate {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DecodeWords decodes a module that is already split into words.
func (d *Decoder) DecodeWords(words []uint32) (*Module, error) {
	return d.Decode(binary.WordBytes(words, gobinary.LittleEndian))
}

func (d *Decoder) decode(data []byte) (*Module, error) {
	words, order, err := binary.Words(data)
	if err != nil {
		return nil, streamError(len(data), err)
	}
	if len(words) < HeaderWords {
		return nil, errors.Truncated(len(data), fmt.Sprintf("module header needs %d words, have %d", HeaderWords, len(words)))
	}

	m := NewModule()
	m.order = order
	m.header = Header{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}
	d.checkHeader(m)

	r := binary.NewReader(words)
	if _, err := r.ReadWords(HeaderWords); err != nil {
		return nil, streamError(len(data), err)
	}
	for r.Len() > 0 {
		if err := d.decodeInstruction(r, m); err != nil {
			return nil, err
		}
	}

	Logger().Debug("decoded module",
		zap.String("version", m.header.VersionString()),
		zap.Uint32("bound", m.header.Bound),
		zap.Int("entities", m.Len()),
		zap.Int("ids", len(m.ids)),
		zap.Int("forwards", len(m.Forwards())),
	)
	return m, nil
}

func (d *Decoder) checkHeader(m *Module) {
	h := m.header
	if h.Version&0xFF0000FF != 0 {
		m.diagnose(errors.Validation(0, false, "", "header-version",
			fmt.Sprintf("version word 0x%08x has reserved bits set", h.Version)))
	} else if h.Version > Version16 {
		m.diagnose(errors.Validation(0, false, "", "header-version",
			fmt.Sprintf("version %s is newer than %d.%d", h.VersionString(), Version16>>16, Version16>>8&0xFF)))
	}
	if h.Schema != 0 {
		m.diagnose(errors.Validation(0, false, "", "header-schema",
			fmt.Sprintf("schema word is %d, want 0", h.Schema)))
	}
}

// decodeInstruction decodes exactly one instruction and adds it to m.
func (d *Decoder) decodeInstruction(r *binary.Reader, m *Module) error {
	offset := r.Position()
	head, err := r.ReadWord()
	if err != nil {
		return errors.Truncated(offset, "missing instruction header")
	}
	wc := int(head >> WordCountBits)
	op := Op(head & OpCodeMask)

	if wc == 0 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Op(op.String()).
			Offset(offset).
			Detail("instruction word count is zero").
			Build()
	}
	body, err := r.Sub(wc - 1)
	if err != nil {
		return errors.New(errors.PhaseDecode, errors.KindTruncated).
			Op(op.String()).
			Offset(offset).
			Cause(err).
			Detail("declares %d words, stream has %d left", wc, r.Len()+1).
			Build()
	}

	e, err := d.registry.Create(op)
	if err != nil {
		return errors.UnsupportedOpcode(uint16(op), offset)
	}
	ent := e.entry()
	ent.wordCount = uint32(wc)
	ent.module = m

	fd := &fieldDecoder{r: body, m: m}
	e.decode(fd)
	if fd.err != nil {
		return operandError(fd.err, e, offset)
	}
	if body.Len() > 0 {
		mismatch := errors.WordCountMismatch(op.String(), offset, wc, body.Consumed()+1)
		if e.HasID() {
			mismatch.ID, mismatch.HasID = uint32(e.ID()), true
		}
		return mismatch
	}

	if err := m.Add(e); err != nil {
		return operandError(err, e, offset)
	}
	return nil
}

// operandError places err at the instruction that produced it.
func operandError(err error, e Entity, offset int) error {
	var se *errors.Error
	if !goerrors.As(err, &se) {
		kind := errors.KindInvalidData
		if goerrors.Is(err, binary.ErrUnexpectedEnd) {
			kind = errors.KindTruncated
		}
		b := errors.New(errors.PhaseDecode, kind).
			Op(e.Op().String()).
			Offset(offset)
		var pe *binary.ParseError
		if goerrors.As(err, &pe) {
			b.Cause(pe.Err)
			if kind == errors.KindTruncated {
				b.Detail("operands run past declared word count %d at offset %d", e.WordCount(), pe.Position)
			} else {
				b.Detail("malformed operand at offset %d", pe.Position)
			}
		} else {
			b.Cause(err)
		}
		if e.HasID() {
			b.ID(uint32(e.ID()))
		}
		return b.Build()
	}

	if se.Offset == errors.NoOffset {
		se.Offset = offset
	}
	if se.Op == "" {
		se.Op = e.Op().String()
	}
	if !se.HasID && e.HasID() {
		se.ID, se.HasID = uint32(e.ID()), true
	}
	return se
}

func streamError(size int, err error) error {
	switch {
	case goerrors.Is(err, binary.ErrUnalignedInput):
		return errors.New(errors.PhaseDecode, errors.KindTruncated).
			Offset(size&^(binary.WordSize-1)).
			Cause(err).
			Detail("stream of %d bytes ends inside a word", size).
			Build()
	case goerrors.Is(err, binary.ErrInvalidMagic):
		return errors.New(errors.PhaseDecode, errors.KindInvalidHeader).
			Offset(0).
			Cause(err).
			Detail("magic number is not 0x%08x in either byte order", Magic).
			Build()
	default:
		return errors.New(errors.PhaseDecode, errors.KindTruncated).
			Offset(0).
			Cause(err).
			Detail("stream is too short for a module header").
			Build()
	}
}
