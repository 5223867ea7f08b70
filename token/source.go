package token

import (
	"fmt"
	"io"
)

// Source is the character cursor consumed by the reader.
type Source interface {
	HasNext() bool
	Peek() byte
	Next() byte
	AssertNext(c byte)
}

// Positioner is implemented by sources that can report where the cursor
// is.
type Positioner interface {
	Offset() int
	Pos(off int) Pos
}

// BytesSource is a Source over an in-memory buffer.
type BytesSource struct {
	d   []byte
	i   int
	doc *PosDoc
}

// NewBytesSource creates a source reading d. d is not copied and must not
// be modified while the source is in use.
func NewBytesSource(d []byte) *BytesSource {
	return &BytesSource{d: d}
}

// NewStringSource creates a source reading s.
func NewStringSource(s string) *BytesSource {
	return NewBytesSource([]byte(s))
}

// ReadSource reads r to the end and returns a source over its content.
func ReadSource(r io.Reader) (*BytesSource, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading source: %w", err)
	}
	return NewBytesSource(d), nil
}

func (s *BytesSource) HasNext() bool {
	return s.i < len(s.d)
}

func (s *BytesSource) Peek() byte {
	if s.i < len(s.d) {
		return s.d[s.i]
	}
	return 0
}

func (s *BytesSource) Next() byte {
	if s.i < len(s.d) {
		c := s.d[s.i]
		s.i++
		return c
	}
	return 0
}

// AssertNext consumes c. It panics if the current byte is not c: callers
// only use it after dispatching on Peek.
func (s *BytesSource) AssertNext(c byte) {
	if got := s.Peek(); got != c || !s.HasNext() {
		panic(&AssertError{Want: c, Got: got, Offset: s.i})
	}
	s.i++
}

// Offset returns the number of bytes consumed so far.
func (s *BytesSource) Offset() int {
	return s.i
}

// Pos returns the line and column of off.
func (s *BytesSource) Pos(off int) Pos {
	if s.doc == nil {
		s.doc = NewPosDoc(s.d)
	}
	return s.doc.Pos(off)
}

// Len returns the size of the underlying buffer.
func (s *BytesSource) Len() int {
	return len(s.d)
}

// Reset rewinds the source to the start of d.
func (s *BytesSource) Reset(d []byte) {
	s.d = d
	s.i = 0
	s.doc = nil
}
