package parse

import (
	"bytes"

	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

// Parse parses an arc document.  The root is a free dict when the document
// opens with bare pairs, before any header, and a dict otherwise.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	b := newBuilder(d, opts)
	cst, err := grammar.Parse(d, b.opts.grammarOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("%s", cst.Dump(d))
	}
	return b.program(cst)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseData parses a single value, such as the output of ir.Display.
// Surrounding whitespace is ignored.
func ParseData(d []byte, opts ...ParseOption) (*ir.Node, error) {
	d = bytes.TrimSpace(d)
	b := newBuilder(d, opts)
	cst, err := grammar.ParseRule(grammar.Data, d, b.opts.grammarOpts()...)
	if err != nil {
		return nil, err
	}
	res, err := b.data(cst)
	if err != nil {
		return nil, err
	}
	b.attach(res)
	return res, nil
}

// ParseKeyPath parses dotted key text such as a.b.3 or "x y".z into a path.
func ParseKeyPath(s string) (ir.KeyPath, error) {
	d := []byte(s)
	cst, err := grammar.ParseRule(grammar.Namespace, d)
	if err != nil {
		return nil, err
	}
	return newBuilder(d, nil).keyPath(cst)
}

func newBuilder(d []byte, opts []ParseOption) *builder {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return &builder{src: d, doc: token.NewPosDoc(d), opts: o}
}

func (b *builder) text(n *grammar.Node) string {
	return n.Text(b.src)
}

func (b *builder) pos(n *grammar.Node) *token.Pos {
	return b.doc.Pos(n.Start)
}

func (b *builder) trackPos(y *ir.Node, n *grammar.Node) {
	if b.opts.positions == nil {
		return
	}
	b.opts.positions[y] = b.pos(n)
}

func (b *builder) literalErr(n *grammar.Node, err error) error {
	return &LiteralError{
		Pos:  b.pos(n),
		End:  b.doc.Pos(n.End),
		Text: b.text(n),
		Err:  err,
	}
}

// comment collects n when it is a comment and reports whether it was one.
func (b *builder) comment(n *grammar.Node) bool {
	var (
		kind ir.CommentKind
		txt  string
	)
	switch n.Rule {
	case grammar.LineComment:
		kind = ir.LineComment
		if r := n.Child(grammar.RestOfLine); r != nil {
			txt = b.text(r)
		}
	case grammar.MultiLineComment:
		kind = ir.BlockComment
		all := b.text(n)
		txt = all[2 : len(all)-2]
	default:
		return false
	}
	if !b.opts.comments {
		return true
	}
	c := ir.FromComment(kind, txt)
	b.trackPos(c, n)
	b.pending = append(b.pending, c)
	return true
}

// attach hands pending comments to y.
func (b *builder) attach(y *ir.Node) {
	if len(b.pending) == 0 {
		return
	}
	if y.Comment == nil {
		y.Comment = &ir.Node{Type: ir.CommentType}
	}
	for _, c := range b.pending {
		c.Parent = y.Comment
		c.ParentIndex = len(y.Comment.Values)
		y.Comment.Values = append(y.Comment.Values, c)
	}
	b.pending = nil
}
