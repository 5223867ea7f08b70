package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the newlines of a document so offsets can be turned into
// line and column numbers.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(off int) Pos {
	line, col := p.LineCol(off)
	pos := Pos{I: off, Line: line + 1, Col: col + 1}
	if len(p.d) > 0 {
		pos.Context = p.d[max(0, off-5):min(off+5, len(p.d))]
	}
	return pos
}

// Pos is a position in the input. Line and Col are one based.
type Pos struct {
	I         int
	Line, Col int
	Context   []byte
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Context) > 0 {
		sample = strconv.Quote(string(p.Context))
		sample = sample[1 : len(sample)-1]
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line, p.Col)
}
