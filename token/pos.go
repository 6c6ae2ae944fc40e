package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps rune offsets of a document to 0 based lines and columns.
type PosDoc struct {
	src []rune
	// starts[i] is the offset of the first rune of line i+1.
	starts []int
}

func NewPosDoc(src []rune) *PosDoc {
	p := &PosDoc{src: src}
	for i, r := range src {
		if r == '\n' {
			p.starts = append(p.starts, i+1)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (line, col int) {
	line = sort.SearchInts(p.starts, off+1)
	if line == 0 {
		return 0, off
	}
	return line, off - p.starts[line-1]
}

func (p *PosDoc) Pos(off int) *Pos {
	return &Pos{I: off, D: p}
}

// Pos is a rune offset within a document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

// around returns the quoted text within n runes of the offset.
func (p Pos) around(n int) string {
	lo, hi := max(0, p.I-n), min(len(p.D.src), p.I+n)
	q := strconv.Quote(string(p.D.src[lo:hi]))
	return q[1 : len(q)-1]
}

func (p Pos) String() string {
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", p.around(5), p.I, l, c)
}
