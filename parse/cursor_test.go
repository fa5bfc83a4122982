package parse

import (
	"testing"
)

func TestCursorWalk(t *testing.T) {
	cur := NewCursor([]byte("abc"))

	want := []byte{'a', 'b', 'c'}
	for i, ch := range want {
		if cur.Pos() != i {
			t.Errorf("Pos() = %d, want %d", cur.Pos(), i)
		}
		if cur.Current() != ch {
			t.Errorf("Current() = %q, want %q", cur.Current(), ch)
		}
		if cur.AtEnd() {
			t.Errorf("AtEnd() = true at %d, want false", i)
		}
		cur.Advance()
	}

	if !cur.AtEnd() {
		t.Error("AtEnd() = false after full walk, want true")
	}
	if cur.Current() != 0 {
		t.Errorf("Current() at end = %q, want NUL sentinel", cur.Current())
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	cur := NewCursor([]byte("x"))
	cur.Advance()
	cur.Advance()
	cur.Advance()

	if cur.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", cur.Pos())
	}
}

func TestCursorSeek(t *testing.T) {
	cur := NewCursor([]byte("abc"))
	cur.Advance()
	cur.Advance()

	mark := cur.Pos()
	cur.Seek(0)
	if cur.Current() != 'a' {
		t.Errorf("Current() after Seek(0) = %q, want 'a'", cur.Current())
	}

	cur.Seek(mark)
	if cur.Current() != 'c' {
		t.Errorf("Current() after Seek(%d) = %q, want 'c'", mark, cur.Current())
	}
}

func TestCursorEmptyInput(t *testing.T) {
	cur := NewCursor(nil)
	if !cur.AtEnd() {
		t.Error("AtEnd() = false for empty input, want true")
	}
	if cur.Current() != 0 {
		t.Errorf("Current() = %q, want NUL sentinel", cur.Current())
	}
}
