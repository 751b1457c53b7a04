package formatter

import "testing"

func TestBuffer_WriteWithinCapacity(t *testing.T) {
	b := NewBuffer(10)
	b.WriteString("hi")

	if b.String() != "hi" {
		t.Errorf("String() = %q, want hi", b.String())
	}

	if b.Truncated() {
		t.Error("Truncated() = true, want false")
	}

	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBuffer_TruncatesExactlyAtCapacity(t *testing.T) {
	b := NewBuffer(4)
	b.WriteString("abcdefgh")

	if b.String() != "abcd" {
		t.Errorf("String() = %q, want abcd", b.String())
	}

	if !b.Truncated() {
		t.Error("Truncated() = false, want true")
	}
}

func TestBuffer_WriteAfterFullIsNoop(t *testing.T) {
	b := NewBuffer(2)
	b.WriteString("ab")
	b.WriteString("cd")

	if b.String() != "ab" {
		t.Errorf("String() = %q, want ab", b.String())
	}

	if !b.Truncated() {
		t.Error("Truncated() = false, want true")
	}
}

func TestBuffer_MultipleWritesAccumulate(t *testing.T) {
	b := NewBuffer(10)
	b.WriteString("a")
	b.WriteString("b")
	b.WriteString("c")

	if b.String() != "abc" {
		t.Errorf("String() = %q, want abc", b.String())
	}
}
