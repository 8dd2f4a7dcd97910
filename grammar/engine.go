package grammar

import (
	"bytes"
	"unicode/utf8"
)

type atomicity int

const (
	nonAtomic atomicity = iota
	// atomic rules neither skip nor produce inner nodes.
	atomic
	// compound atomic rules do not skip but keep their inner nodes.
	compoundAtomic
)

// parser is an ordered-choice matcher.  Every matching method either
// succeeds and advances, or fails and leaves pos and the node stack as it
// found them.
type parser struct {
	src  []byte
	pos  int
	atom atomicity
	// look counts enclosing lookaheads.
	look     int
	skipping bool

	depth    int
	maxDepth int
	tooDeep  bool
	deepPos  int

	stack []*Node

	attemptPos int
	attempts   []Rule
}

func newParser(src []byte, o *opts) *parser {
	return &parser{
		src:      src,
		maxDepth: o.maxDepth,
	}
}

// rule matches f as rule r, wrapping whatever f produced into a node of r
// and recording r as expected on failure.
func (p *parser) rule(r Rule, f func() bool) bool {
	if p.tooDeep {
		return false
	}
	start, mark := p.pos, len(p.stack)
	idx := 0
	if start == p.attemptPos {
		idx = len(p.attempts)
	}
	prev := p.attemptsAt(start)
	emit := !r.silent() && r != EOI && p.atom != atomic && p.look == 0
	if !f() {
		p.track(r, start, idx, prev)
		p.pos = start
		p.stack = p.stack[:mark]
		return false
	}
	if !emit {
		return true
	}
	n := &Node{Rule: r, Start: start, End: p.pos}
	if len(p.stack) > mark {
		n.Children = append([]*Node(nil), p.stack[mark:]...)
		p.stack = p.stack[:mark]
	}
	p.stack = append(p.stack, n)
	return true
}

func (p *parser) attemptsAt(pos int) int {
	if pos == p.attemptPos {
		return len(p.attempts)
	}
	return 0
}

// track records r as a failed attempt at pos when pos is the furthest
// failure seen.  Attempts made by r's own children at the same position
// are replaced by r, unless exactly one child attempt was recorded, in
// which case that child is the more precise report.
func (p *parser) track(r Rule, pos, idx, prev int) {
	if r.silent() || p.atom == atomic || p.look > 0 || p.skipping {
		return
	}
	curr := p.attemptsAt(pos)
	if curr > prev && curr-prev == 1 {
		return
	}
	if pos == p.attemptPos {
		p.attempts = p.attempts[:idx]
	}
	if pos > p.attemptPos {
		p.attempts = p.attempts[:0]
		p.attemptPos = pos
	}
	if pos == p.attemptPos {
		p.attempts = append(p.attempts, r)
	}
}

func (p *parser) expected() []Rule {
	seen := map[Rule]bool{}
	var res []Rule
	for _, r := range p.attempts {
		if seen[r] {
			continue
		}
		seen[r] = true
		res = append(res, r)
	}
	return res
}

func (p *parser) withAtomicity(a atomicity, f func() bool) bool {
	prev := p.atom
	p.atom = a
	ok := f()
	p.atom = prev
	return ok
}

// nest bounds recursion through self-nesting rules.
func (p *parser) nest(f func() bool) bool {
	if p.depth >= p.maxDepth {
		if !p.tooDeep {
			p.tooDeep = true
			p.deepPos = p.pos
		}
		return false
	}
	p.depth++
	ok := f()
	p.depth--
	return ok
}

func (p *parser) seq(fs ...func() bool) bool {
	start, mark := p.pos, len(p.stack)
	for _, f := range fs {
		if !f() {
			p.pos = start
			p.stack = p.stack[:mark]
			return false
		}
	}
	return true
}

func (p *parser) alt(fs ...func() bool) bool {
	for _, f := range fs {
		if f() {
			return true
		}
	}
	return false
}

func (p *parser) opt(f func() bool) bool {
	f()
	return true
}

func (p *parser) rep(f func() bool) bool {
	for {
		pos := p.pos
		if !f() || p.pos == pos {
			return true
		}
	}
}

// not is a negative lookahead: it never consumes input.
func (p *parser) not(f func() bool) bool {
	start, mark := p.pos, len(p.stack)
	p.look++
	ok := f()
	p.look--
	p.pos = start
	p.stack = p.stack[:mark]
	return !ok
}

func (p *parser) lit(s string) bool {
	if bytes.HasPrefix(p.src[p.pos:], []byte(s)) {
		p.pos += len(s)
		return true
	}
	return false
}

// anyChar matches one character of valid UTF-8.
func (p *parser) anyChar() bool {
	return p.char(func(rune) bool { return true })
}

func (p *parser) char(pred func(rune) bool) bool {
	if p.pos >= len(p.src) {
		return false
	}
	r, sz := utf8.DecodeRune(p.src[p.pos:])
	if r == utf8.RuneError && sz <= 1 {
		return false
	}
	if !pred(r) {
		return false
	}
	p.pos += sz
	return true
}

func (p *parser) byteIf(pred func(byte) bool) func() bool {
	return func() bool {
		if p.pos >= len(p.src) || !pred(p.src[p.pos]) {
			return false
		}
		p.pos++
		return true
	}
}
