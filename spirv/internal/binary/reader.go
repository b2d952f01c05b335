package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// WordSize is the width of one stream word in bytes.
const WordSize = 4

// Magic is the first word of every module, read in the stream's byte order.
const Magic uint32 = 0x07230203

// Reading errors.
var (
	ErrUnexpectedEnd  = errors.New("unexpected end of words")
	ErrUnterminated   = errors.New("string is not null-terminated")
	ErrInvalidUTF8    = errors.New("invalid UTF-8 in string")
	ErrUnalignedInput = errors.New("byte length is not a multiple of 4")
	ErrInvalidMagic   = errors.New("invalid magic number")
)

// Words converts a byte stream into words. The byte order is chosen by the
// magic number in the first word.
func Words(data []byte) ([]uint32, binary.ByteOrder, error) {
	if len(data)%WordSize != 0 {
		return nil, nil, ErrUnalignedInput
	}
	if len(data) < WordSize {
		return nil, nil, ErrUnexpectedEnd
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == Magic:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == Magic:
		order = binary.BigEndian
	default:
		return nil, nil, ErrInvalidMagic
	}

	words := make([]uint32, len(data)/WordSize)
	for i := range words {
		words[i] = order.Uint32(data[i*WordSize:])
	}
	return words, order, nil
}

// Reader reads words with position tracking.
type Reader struct {
	words []uint32
	pos   int
	base  int
}

// NewReader creates a new Reader over words starting at stream word 0.
func NewReader(words []uint32) *Reader {
	return &Reader{words: words}
}

// Position returns the current byte offset in the enclosing stream.
func (r *Reader) Position() int {
	return (r.base + r.pos) * WordSize
}

// Len returns the number of unread words.
func (r *Reader) Len() int {
	return len(r.words) - r.pos
}

// Consumed returns the number of words read so far.
func (r *Reader) Consumed() int {
	return r.pos
}

// ReadWord reads a single word.
func (r *Reader) ReadWord() (uint32, error) {
	if r.pos >= len(r.words) {
		return 0, r.wrapError(ErrUnexpectedEnd)
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

// ReadWords reads exactly n words.
func (r *Reader) ReadWords(n int) ([]uint32, error) {
	if n < 0 || n > r.Len() {
		return nil, r.wrapError(ErrUnexpectedEnd)
	}
	out := make([]uint32, n)
	copy(out, r.words[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadRemaining reads all unread words.
func (r *Reader) ReadRemaining() []uint32 {
	out, _ := r.ReadWords(r.Len())
	return out
}

// ReadString reads a null-terminated string packed four bytes per word,
// lowest-order byte first. The terminating word is consumed in full.
func (r *Reader) ReadString() (string, error) {
	s, n, err := DecodeString(r.words[r.pos:])
	if err != nil {
		return "", r.wrapError(err)
	}
	r.pos += n
	return s, nil
}

// Sub returns a reader over the next n words and advances past them.
func (r *Reader) Sub(n int) (*Reader, error) {
	if n < 0 || n > r.Len() {
		return nil, r.wrapError(ErrUnexpectedEnd)
	}
	sub := &Reader{
		words: r.words[r.pos : r.pos+n],
		base:  r.base + r.pos,
	}
	r.pos += n
	return sub, nil
}

// DecodeString decodes a packed null-terminated string from the front of
// words and reports how many words it occupied.
func DecodeString(words []uint32) (string, int, error) {
	var buf []byte
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				if !utf8.Valid(buf) {
					return "", 0, ErrInvalidUTF8
				}
				return string(buf), i + 1, nil
			}
			buf = append(buf, b)
		}
	}
	return "", 0, ErrUnterminated
}

func (r *Reader) wrapError(err error) error {
	return &ParseError{Position: r.Position(), Err: err}
}

// ParseError is a read failure at a byte offset in the enclosing stream.
type ParseError struct {
	Err      error
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
