package token

import (
	"errors"
	"strings"
	"testing"
)

func TestBytesSource(t *testing.T) {
	src := NewStringSource("ab")
	if !src.HasNext() {
		t.Fatal("expected input")
	}
	if c := src.Peek(); c != 'a' {
		t.Errorf("peek: got %q", c)
	}
	if c := src.Next(); c != 'a' {
		t.Errorf("next: got %q", c)
	}
	src.AssertNext('b')
	if src.HasNext() {
		t.Error("expected end of input")
	}
	if c := src.Peek(); c != 0 {
		t.Errorf("peek at end: got %q", c)
	}
	if c := src.Next(); c != 0 {
		t.Errorf("next at end: got %q", c)
	}
	if src.Offset() != 2 {
		t.Errorf("offset: got %d", src.Offset())
	}
}

func TestAssertNextPanics(t *testing.T) {
	src := NewStringSource("x")
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if !errors.Is(err, ErrAssert) {
			t.Errorf("expected ErrAssert, got %v", err)
		}
	}()
	src.AssertNext('y')
}

func TestReadSource(t *testing.T) {
	src, err := ReadSource(strings.NewReader("[1]"))
	if err != nil {
		t.Fatal(err)
	}
	if src.Len() != 3 {
		t.Errorf("len: got %d", src.Len())
	}
}

func TestPos(t *testing.T) {
	src := NewStringSource("{\n  \"a\": x\n}")
	tests := []struct {
		off       int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{9, 2, 8},
		{11, 3, 1},
	}
	for _, tc := range tests {
		p := src.Pos(tc.off)
		if p.Line != tc.line || p.Col != tc.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tc.off, p.Line, p.Col, tc.line, tc.col)
		}
	}
	if s := src.Pos(9).String(); !strings.Contains(s, "line=2, col=8") {
		t.Errorf("unexpected pos string %q", s)
	}
}
