package binary

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderReadWord(t *testing.T) {
	data := []uint32{1, 2, 3}
	r := NewReader(data)

	for i, want := range data {
		if r.Position() != i*WordSize {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i*WordSize)
		}
		w, err := r.ReadWord()
		if err != nil {
			t.Fatalf("ReadWord %d: %v", i, err)
		}
		if w != want {
			t.Errorf("ReadWord %d: got %d, want %d", i, w, want)
		}
	}

	if r.Len() != 0 {
		t.Errorf("Len: got %d, want 0", r.Len())
	}

	_, err := r.ReadWord()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestReaderReadWords(t *testing.T) {
	r := NewReader([]uint32{1, 2, 3, 4, 5})

	got, err := r.ReadWords(3)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if diff := cmp.Diff([]uint32{1, 2, 3}, got); diff != "" {
		t.Errorf("ReadWords mismatch (-want +got):\n%s", diff)
	}
	if r.Consumed() != 3 {
		t.Errorf("Consumed: got %d, want 3", r.Consumed())
	}

	if _, err := r.ReadWords(10); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}

	rest := r.ReadRemaining()
	if diff := cmp.Diff([]uint32{4, 5}, rest); diff != "" {
		t.Errorf("ReadRemaining mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]uint32{10, 11, 12, 13})
	if _, err := r.ReadWord(); err != nil {
		t.Fatal(err)
	}

	sub, err := r.Sub(2)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if sub.Position() != 4 {
		t.Errorf("sub position: got %d, want 4", sub.Position())
	}
	if sub.Len() != 2 {
		t.Errorf("sub len: got %d, want 2", sub.Len())
	}
	if r.Position() != 12 {
		t.Errorf("parent position: got %d, want 12", r.Position())
	}

	if _, err := sub.ReadWords(3); err == nil {
		t.Error("sub reader must not read past its bound")
	}
	if _, err := r.Sub(5); err == nil {
		t.Error("expected error for oversized sub reader")
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		s     string
		words int
	}{
		{"", 1},
		{"a", 1},
		{"foo", 1},
		{"main", 2},
		{"GLSL.std.450", 4},
		{"héllo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			words := StringWords(tt.s)
			if len(words) != tt.words {
				t.Errorf("StringWords(%q) = %d words, want %d", tt.s, len(words), tt.words)
			}

			r := NewReader(append(words, 0xdeadbeef))
			got, err := r.ReadString()
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tt.s {
				t.Errorf("ReadString = %q, want %q", got, tt.s)
			}
			if r.Len() != 1 {
				t.Errorf("ReadString consumed %d words, want %d", r.Consumed(), tt.words)
			}
		})
	}
}

func TestStringPacking(t *testing.T) {
	// "foo" packs lowest byte first with the terminator in the high byte.
	if diff := cmp.Diff([]uint32{0x006f6f66}, StringWords("foo")); diff != "" {
		t.Errorf("packing mismatch (-want +got):\n%s", diff)
	}
}

func TestReadStringErrors(t *testing.T) {
	r := NewReader([]uint32{0x64636261})
	if _, err := r.ReadString(); !errors.Is(err, ErrUnterminated) {
		t.Errorf("expected ErrUnterminated, got %v", err)
	}

	r = NewReader([]uint32{0x0000fffe})
	if _, err := r.ReadString(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestWords(t *testing.T) {
	src := []uint32{Magic, 0x00010000, 7}

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			words, got, err := Words(WordBytes(src, order))
			if err != nil {
				t.Fatalf("Words: %v", err)
			}
			if got != order {
				t.Errorf("byte order: got %v, want %v", got, order)
			}
			if diff := cmp.Diff(src, words); diff != "" {
				t.Errorf("words mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, _, err := Words([]byte{1, 2, 3}); !errors.Is(err, ErrUnalignedInput) {
		t.Errorf("expected ErrUnalignedInput, got %v", err)
	}
	if _, _, err := Words([]byte{}); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
	if _, _, err := Words([]byte{1, 2, 3, 4}); !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.WriteWord(1)
	w.WriteWords([]uint32{2, 3})
	w.WriteString("foo")

	if w.Len() != 4 {
		t.Errorf("Len: got %d, want 4", w.Len())
	}
	want := []uint32{1, 2, 3, 0x006f6f66}
	if diff := cmp.Diff(want, w.Words()); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}

	b := w.Bytes(binary.LittleEndian)
	if len(b) != 16 || b[0] != 1 || b[12] != 'f' {
		t.Errorf("Bytes: unexpected encoding %v", b)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Reader) error
		pos  int
		want error
	}{
		{"word past end", func(r *Reader) error {
			_, err := r.ReadWords(2)
			if err != nil {
				return err
			}
			_, err = r.ReadWord()
			return err
		}, 16, ErrUnexpectedEnd},
		{"unterminated string", func(r *Reader) error {
			_, _ = r.ReadWord()
			_, err := r.ReadString()
			return err
		}, 12, ErrUnterminated},
		{"sub too long", func(r *Reader) error {
			_, err := r.Sub(3)
			return err
		}, 8, ErrUnexpectedEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewReader([]uint32{0, 0, 1, 0x41414141})
			_, _ = parent.ReadWord()
			_, _ = parent.ReadWord()
			r, err := parent.Sub(2)
			if err != nil {
				t.Fatalf("Sub: %v", err)
			}

			err = tt.read(r)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T (%v)", err, err)
			}
			if pe.Position != tt.pos {
				t.Errorf("Position: got %d, want %d", pe.Position, tt.pos)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
