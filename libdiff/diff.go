package libdiff

import (
	"github.com/signadot/arc-format/arc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two values.
type Change struct {
	Op   Op
	Path ir.KeyPath
	// From is the old value, nil for Add.
	From *ir.Node
	// To is the new value, nil for Remove.
	To *ir.Node
	// Edits turns From.String into To.String for Edit changes.
	Edits []diffpatch.Diff
}

// Diff returns the changes that turn from into to.  Applying them in
// order with Apply reproduces to, up to dict entry order.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.node(nil, from, to)
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(c Change) {
	d.changes = append(d.changes, c)
}

func (d *differ) node(p ir.KeyPath, from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	if from == nil || to == nil || from.Type != to.Type || from.Tag != to.Tag {
		d.add(Change{Op: Replace, Path: p, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.DictType, ir.FreeDictType:
		d.dict(p, from, to)
	case ir.ListType:
		d.list(p, from, to)
	case ir.StringType, ir.HandlerStringType:
		d.add(Change{Op: Edit, Path: p, From: from, To: to, Edits: editString(from.String, to.String)})
	default:
		d.add(Change{Op: Replace, Path: p, From: from, To: to})
	}
}

func (d *differ) dict(p ir.KeyPath, from, to *ir.Node) {
	for i, k := range from.Fields {
		if _, ok := to.Lookup(k); !ok {
			d.add(Change{Op: Remove, Path: p.Append(ir.Key(k)), From: from.Values[i]})
		}
	}
	for i, k := range from.Fields {
		if tv, ok := to.Lookup(k); ok {
			d.node(p.Append(ir.Key(k)), from.Values[i], tv)
		}
	}
	for i, k := range to.Fields {
		if _, ok := from.Lookup(k); !ok {
			d.add(Change{Op: Add, Path: p.Append(ir.Key(k)), To: to.Values[i]})
		}
	}
}

func (d *differ) list(p ir.KeyPath, from, to *ir.Node) {
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		d.node(p.Append(ir.Index(i)), from.Values[i], to.Values[i])
	}
	// trailing removals go last first so each index is valid when applied
	for i := len(from.Values) - 1; i >= n; i-- {
		d.add(Change{Op: Remove, Path: p.Append(ir.Index(i)), From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		d.add(Change{Op: Add, Path: p.Append(ir.Index(i)), To: to.Values[i]})
	}
}
