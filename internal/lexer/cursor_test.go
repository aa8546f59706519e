package lexer

import (
	"testing"

	"nixlint/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.nix", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("expected EOF after last byte")
	}
}

func TestPeekAhead(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if _, _, _, ok := cursor.Peek3(); !ok {
		t.Fatal("Peek3 should see three bytes")
	}
	if cursor.PeekAt(2) != 'c' || cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Off != 3 {
		t.Fatalf("Advance past limit: Off=%d", cursor.Off)
	}
}

func TestMarkResetSpan(t *testing.T) {
	cursor := NewCursor(createFile("let x"))
	m := cursor.Mark()
	cursor.Advance(3)
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if !cursor.Eat('l') || cursor.Eat('x') {
		t.Fatal("Eat after Reset mismatch")
	}
}
