package eval

import (
	"fmt"

	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/ir"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resolve returns a copy of doc with cites replaced by copies of their
// targets and tagged values replaced by what their handlers make of them.
// doc itself is not modified.
func Resolve(doc *ir.Node, opts ...Option) (*ir.Node, error) {
	o := &evalOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	r := &resolver{
		root:   doc.Root(),
		opts:   o,
		active: map[string]bool{},
	}
	res, err := r.value(doc, doc.KeyPath())
	if err != nil {
		return nil, err
	}
	res.Parent = nil
	return res, nil
}

type resolver struct {
	root   *ir.Node
	opts   *evalOpts
	active map[string]bool
	paths  []string
}

// value resolves y, found at p, into a fresh tree.
func (r *resolver) value(y *ir.Node, p ir.KeyPath) (*ir.Node, error) {
	switch y.Type {
	case ir.CiteType:
		if r.opts.noCites {
			return y.Clone(), nil
		}
		if debug.Eval() {
			debug.Logf("cite $%s at %s\n", y.Path.Quoted(), pathText(p))
		}
		t, err := r.follow(y, p)
		if err != nil {
			return nil, err
		}
		key := y.Path.String()
		r.active[key] = true
		defer delete(r.active, key)
		return r.value(t, y.Path)
	case ir.HandlerStringType, ir.HandlerNumberType:
		if r.opts.noHandlers {
			return y.Clone(), nil
		}
		h := r.opts.registry.Lookup(y.Tag)
		if h == nil {
			if r.opts.strict {
				return nil, &HandlerError{Path: p, Tag: y.Tag, Err: ErrNoHandler}
			}
			return y.Clone(), nil
		}
		res, err := h.Handle(y, r.root)
		if err != nil {
			return nil, &HandlerError{Path: p, Tag: y.Tag, Err: err}
		}
		return res, nil
	case ir.ListType, ir.DictType, ir.FreeDictType, ir.RecordType, ir.KeyType:
		res := &ir.Node{Type: y.Type, Tag: y.Tag}
		if y.Comment != nil {
			res.Comment = y.Comment.Clone()
		}
		for i, v := range y.Values {
			var (
				k ir.KeyNode
				f string
			)
			if y.Type.IsDict() {
				f = y.Fields[i]
				k = ir.Key(f)
			} else {
				k = ir.Index(i)
			}
			rv, err := r.value(v, p.Append(k))
			if err != nil {
				return nil, err
			}
			if y.Type.IsDict() {
				res.Set(f, rv)
				continue
			}
			res.Append(rv)
		}
		return res, nil
	}
	return y.Clone(), nil
}

// follow finds the node a cite points at, following cites met on the way.
func (r *resolver) follow(c *ir.Node, at ir.KeyPath) (*ir.Node, error) {
	key := c.Path.String()
	if r.active[key] {
		return nil, &CiteError{At: at, Cite: c.Path, Err: ErrCycle}
	}
	r.active[key] = true
	defer delete(r.active, key)

	y := r.root
	for _, k := range c.Path {
		for y.Type == ir.CiteType {
			t, err := r.follow(y, at)
			if err != nil {
				return nil, err
			}
			y = t
		}
		next, ok := y.Step(k)
		if !ok {
			return nil, &CiteError{At: at, Cite: c.Path, Err: ErrUnresolved, Suggest: r.suggest(c.Path)}
		}
		y = next
	}
	for y.Type == ir.CiteType {
		t, err := r.follow(y, at)
		if err != nil {
			return nil, err
		}
		y = t
	}
	return y, nil
}

// suggest returns the existing path closest to p.
func (r *resolver) suggest(p ir.KeyPath) string {
	if r.paths == nil {
		r.paths = allPaths(r.root)
	}
	return closest(p.String(), r.paths)
}

// Suggest returns the path in doc closest to p, or "" when nothing is
// close.
func Suggest(doc *ir.Node, p ir.KeyPath) string {
	return closest(p.String(), allPaths(doc.Root()))
}

func allPaths(root *ir.Node) []string {
	var res []string
	root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y != root {
			res = append(res, y.KeyPath().String())
		}
		return true, nil
	})
	return res
}

func closest(p string, paths []string) string {
	ranks := fuzzy.RankFindFold(p, paths)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rk := range ranks[1:] {
		if rk.Distance < best.Distance {
			best = rk
		}
	}
	return best.Target
}

// Cites lists the cites in doc and the paths they were found at.
func Cites(doc *ir.Node) []Cite {
	var res []Cite
	doc.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y.Type == ir.CiteType {
			res = append(res, Cite{At: y.KeyPath(), Target: y.Path})
		}
		return true, nil
	})
	return res
}

type Cite struct {
	At     ir.KeyPath
	Target ir.KeyPath
}

func (c Cite) String() string {
	return fmt.Sprintf("%s -> $%s", pathText(c.At), c.Target.Quoted())
}
