package binary

import (
	"encoding/binary"
)

// Writer accumulates words for binary encoding.
type Writer struct {
	words []uint32
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Words returns the written words.
func (w *Writer) Words() []uint32 {
	return w.words
}

// Len returns the number of words written.
func (w *Writer) Len() int {
	return len(w.words)
}

// WriteWord writes a single word.
func (w *Writer) WriteWord(v uint32) {
	w.words = append(w.words, v)
}

// WriteWords writes a word slice.
func (w *Writer) WriteWords(vs []uint32) {
	w.words = append(w.words, vs...)
}

// WriteString writes s as packed bytes followed by a null terminator,
// zero-padded to a word boundary.
func (w *Writer) WriteString(s string) {
	w.words = append(w.words, StringWords(s)...)
}

// Bytes serializes the written words in the given byte order.
func (w *Writer) Bytes(order binary.ByteOrder) []byte {
	return WordBytes(w.words, order)
}

// StringWords packs s into words with its null terminator.
func StringWords(s string) []uint32 {
	out := make([]uint32, len(s)/WordSize+1)
	for i := 0; i < len(s); i++ {
		out[i/WordSize] |= uint32(s[i]) << (8 * (i % WordSize))
	}
	return out
}

// WordBytes serializes words in the given byte order.
func WordBytes(words []uint32, order binary.ByteOrder) []byte {
	buf := make([]byte, len(words)*WordSize)
	for i, v := range words {
		order.PutUint32(buf[i*WordSize:], v)
	}
	return buf
}
