package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

type builder struct {
	src  []byte
	doc  *token.PosDoc
	opts *parseOpts

	root *ir.Node
	// scope is the container bare statements write into: the root, or
	// the target of the last header.
	scope  *ir.Node
	header ir.KeyPath
	headed bool

	pending []*ir.Node
}

func (b *builder) program(cst *grammar.Node) (*ir.Node, error) {
	b.root = ir.NewDict()
	if freeRoot(cst) {
		b.root = ir.NewFreeDict()
	}
	b.trackPos(b.root, cst)
	b.scope = b.root
	for _, st := range cst.Children {
		if err := b.statement(st); err != nil {
			return nil, err
		}
	}
	b.attach(b.root)
	return b.root, nil
}

// freeRoot reports whether a bare pair comes before any header.
func freeRoot(cst *grammar.Node) bool {
	for _, st := range cst.Children {
		switch st.Rule {
		case grammar.DictPair:
			return true
		case grammar.DictScope, grammar.ListScope:
			return false
		}
	}
	return false
}

func (b *builder) statement(n *grammar.Node) error {
	if b.comment(n) {
		return nil
	}
	switch n.Rule {
	case grammar.Separator, grammar.EmptyLine:
		return nil
	case grammar.DictPair:
		if b.scope.Type == ir.ListType {
			return b.appendFree(n, b.dictPair)
		}
		return b.dictPair(b.scope, n)
	case grammar.DictLiteral:
		if b.scope.Type == ir.ListType {
			return b.appendFree(n, b.pairsInto)
		}
		return b.pairsInto(b.scope, n)
	case grammar.DictScope:
		return b.dictScope(n)
	case grammar.ListScope:
		return b.listScope(n)
	case grammar.IncludeStatement:
		return b.include(n)
	}
	return fmt.Errorf("unexpected statement %s at %s", n.Rule, b.pos(n))
}

// appendFree fills a new free dict from n and appends it to the list
// scope.
func (b *builder) appendFree(n *grammar.Node, fill func(*ir.Node, *grammar.Node) error) error {
	fd := ir.NewFreeDict()
	b.trackPos(fd, n)
	if err := fill(fd, n); err != nil {
		return err
	}
	b.attach(fd)
	b.scope.Append(fd)
	return nil
}

func (b *builder) pairsInto(dst *ir.Node, n *grammar.Node) error {
	for _, c := range n.Children {
		if c.Rule != grammar.DictPair {
			b.comment(c)
			continue
		}
		if err := b.dictPair(dst, c); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) dictScope(n *grammar.Node) error {
	if err := b.enter(n.Children[0], ir.DictType); err != nil {
		return err
	}
	return b.pairsInto(b.scope, n)
}

func (b *builder) listScope(n *grammar.Node) error {
	if err := b.enter(n.Children[0], ir.ListType); err != nil {
		return err
	}
	for _, c := range n.Children[1:] {
		if c.Rule != grammar.ListPair {
			b.comment(c)
			continue
		}
		if err := b.listPair(b.scope, c); err != nil {
			return err
		}
	}
	return nil
}

// enter resolves a header and makes its container the current scope.
func (b *builder) enter(head *grammar.Node, want ir.Type) error {
	dots := 0
	var rel ir.KeyPath
	for _, c := range head.Children {
		switch c.Rule {
		case grammar.Dot:
			dots++
		case grammar.Namespace:
			p, err := b.keyPath(c)
			if err != nil {
				return err
			}
			rel = p
		default:
			b.comment(c)
		}
	}
	path := rel
	if dots > 0 {
		if !b.headed || dots-1 > len(b.header) {
			return b.literalErr(head, fmt.Errorf("%w: %d dots after %q", ErrBadHeader, dots, b.header.String()))
		}
		path = b.header[:len(b.header)-(dots-1)].Append(rel...)
	}
	y, err := b.container(head, b.root, path, want)
	if err != nil {
		return err
	}
	if debug.Build() {
		debug.Logf("scope %s %s\n", path.Quoted(), y.Type)
	}
	b.header = path
	b.headed = true
	b.scope = y
	return nil
}

// anyContainer lets container end at an existing dict or list.  A missing
// final step is created as a dict.
const anyContainer ir.Type = -1

// container walks path from y, creating dicts for missing steps and a
// container of type want at the end.
func (b *builder) container(at *grammar.Node, y *ir.Node, path ir.KeyPath, want ir.Type) (*ir.Node, error) {
	for i, k := range path {
		kind := ir.DictType
		if i == len(path)-1 {
			kind = want
		}
		next, ok := y.Step(k)
		if !ok {
			if y.Type == ir.ListType {
				return nil, b.conflict(at, path[:i+1], y)
			}
			next = &ir.Node{Type: kind}
			if kind == anyContainer {
				next.Type = ir.DictType
			}
			b.trackPos(next, at)
			y.Set(stepKey(k), next)
		}
		switch {
		case kind == ir.ListType && next.Type == ir.ListType:
		case kind != ir.ListType && next.Type.IsDict():
		case (i < len(path)-1 || kind == anyContainer) && next.Type == ir.ListType:
		default:
			return nil, b.conflict(at, path[:i+1], next)
		}
		y = next
	}
	return y, nil
}

func (b *builder) conflict(at *grammar.Node, p ir.KeyPath, y *ir.Node) error {
	return b.literalErr(at, fmt.Errorf("%w: %s is a %s", ErrConflict, p.Quoted(), y.Type))
}

func stepKey(k ir.KeyNode) string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return k.Key
}

// dictPair assigns the pair's value at its namespace below dst.  An
// existing key is overwritten.
func (b *builder) dictPair(dst *ir.Node, n *grammar.Node) error {
	var (
		path ir.KeyPath
		val  *ir.Node
		err  error
	)
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Namespace:
			path, err = b.keyPath(c)
		case grammar.Data:
			val, err = b.data(c)
		default:
			b.comment(c)
		}
		if err != nil {
			return err
		}
	}
	y, err := b.container(n, dst, path[:len(path)-1], anyContainer)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	if y.Type == ir.ListType {
		if !last.IsIndex {
			return b.conflict(n, path[:len(path)-1], y)
		}
		i := last.Index
		if i >= len(y.Values) {
			return b.literalErr(n, fmt.Errorf("%w: %s has no element %d", ErrConflict, path[:len(path)-1].Quoted(), last.Index))
		}
		val.Parent = y
		val.ParentIndex = i
		val.ParentField = ""
		y.Values[i] = val
		return nil
	}
	y.Set(stepKey(last), val)
	return nil
}

// listPair appends to the list dst: one free dict for an insert, or each
// value for an append.
func (b *builder) listPair(dst *ir.Node, n *grammar.Node) error {
	var fd *ir.Node
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.Insert:
			fd = ir.NewFreeDict()
			b.trackPos(fd, n)
		case grammar.Append:
		case grammar.DictPair:
			if err := b.dictPair(fd, c); err != nil {
				return err
			}
		case grammar.Data:
			v, err := b.data(c)
			if err != nil {
				return err
			}
			dst.Append(v)
		default:
			b.comment(c)
		}
	}
	if fd != nil {
		b.attach(fd)
		dst.Append(fd)
	}
	return nil
}

func (b *builder) data(n *grammar.Node) (*ir.Node, error) {
	for _, c := range n.Children {
		if b.comment(c) {
			continue
		}
		v, err := b.value(c)
		if err != nil {
			return nil, err
		}
		b.trackPos(v, c)
		b.attach(v)
		return v, nil
	}
	return nil, fmt.Errorf("empty %s at %s", n.Rule, b.pos(n))
}

func (b *builder) value(n *grammar.Node) (*ir.Node, error) {
	switch n.Rule {
	case grammar.Byte:
		return b.byteLit(n)
	case grammar.Number:
		return b.number(n)
	case grammar.Special:
		return b.special(n), nil
	case grammar.String:
		return b.stringLit(n), nil
	case grammar.CiteValue:
		p, err := b.keyPath(n.Child(grammar.Namespace))
		if err != nil {
			return nil, err
		}
		return ir.FromCite(p), nil
	case grammar.DictLiteral:
		res := ir.NewDict()
		if err := b.pairsInto(res, n); err != nil {
			return nil, err
		}
		return res, nil
	case grammar.ListLiteral:
		res := ir.NewList()
		for _, c := range n.Children {
			if c.Rule != grammar.Data {
				b.comment(c)
				continue
			}
			v, err := b.data(c)
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
		return res, nil
	case grammar.ImportStatement:
		return b.importValue(n)
	case grammar.InlineString:
		return ir.FromString(b.text(n)), nil
	}
	return nil, fmt.Errorf("unexpected value %s at %s", n.Rule, b.pos(n))
}

func (b *builder) directive(n *grammar.Node, kind DirectiveKind) Directive {
	d := Directive{Kind: kind, Pos: b.pos(n), Scope: b.header}
	for _, c := range n.Children {
		switch c.Rule {
		case grammar.StringNormal:
			d.Path = b.stringBody(c)
		case grammar.Symbol:
			d.Symbol = b.text(c)
		default:
			b.comment(c)
		}
	}
	if b.opts.directives != nil {
		*b.opts.directives = append(*b.opts.directives, d)
	}
	if debug.Build() {
		debug.Logf("%s %q %s at %s\n", d.Kind, d.Path, d.Symbol, d.Pos)
	}
	return d
}

func (b *builder) load(d Directive) (*ir.Node, error) {
	y, err := b.opts.loader.Load(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q at %s: %w", ErrLoad, d.Kind, d.Path, d.Pos, err)
	}
	if y == nil {
		return nil, fmt.Errorf("%w: %s %q at %s: no value", ErrLoad, d.Kind, d.Path, d.Pos)
	}
	return y.Clone(), nil
}

// include merges a loaded dict into the current scope, or appends it when
// the scope is a list.  Without a loader the directive is only collected.
func (b *builder) include(n *grammar.Node) error {
	d := b.directive(n, Include)
	if b.opts.loader == nil {
		return nil
	}
	y, err := b.load(d)
	if err != nil {
		return err
	}
	if b.scope.Type == ir.ListType {
		b.scope.Append(y)
		return nil
	}
	if !y.Type.IsDict() {
		return fmt.Errorf("%w: include %q at %s: got %s, want a dict", ErrLoad, d.Path, d.Pos, y.Type)
	}
	for i, f := range y.Fields {
		b.scope.Set(f, y.Values[i])
	}
	return nil
}

// importValue is the loaded value, or a record describing the import when
// no loader is set.
func (b *builder) importValue(n *grammar.Node) (*ir.Node, error) {
	d := b.directive(n, Import)
	if b.opts.loader == nil {
		return d.Record(), nil
	}
	y, err := b.load(d)
	if err != nil {
		return nil, err
	}
	y.Parent = nil
	return y, nil
}
