package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc holds a source document together with the offsets of its line
// terminators so that byte offsets can be mapped to lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

// NewPosDoc indexes the line terminators of d.  "\n", "\r\n" and a lone
// "\r" each end a line; the recorded offset is that of the final byte.
func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		switch c {
		case '\n':
			p.nl(i)
		case '\r':
			if i+1 < len(d) && d[i+1] == '\n' {
				continue
			}
			p.nl(i)
		}
	}
	return p
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	p.n = append(p.n, i)
}

// Bytes returns the indexed document.
func (p *PosDoc) Bytes() []byte { return p.d }

// LineCol returns the 0-based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - p.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// Offset is the inverse of LineCol.  Columns past the end of a line are
// clamped to the line end.
func (p *PosDoc) Offset(line, col int) int {
	if line <= 0 {
		return min(max(col, 0), p.lineEnd(0))
	}
	if line > len(p.n) {
		return len(p.d)
	}
	start := p.n[line-1] + 1
	return min(start+max(col, 0), p.lineEnd(line))
}

func (p *PosDoc) lineEnd(line int) int {
	if line < len(p.n) {
		end := p.n[line]
		if end > 0 && p.d[end] == '\n' && p.d[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(p.d)
}

// Lines returns the number of lines in the document.
func (p *PosDoc) Lines() int {
	return len(p.n) + 1
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (p *PosDoc) End() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
