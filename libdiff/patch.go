package libdiff

import (
	"slices"

	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Apply returns a copy of doc with changes applied in order.  Each change
// checks that the value it replaces or removes is still there, so a diff
// applies only to the value it was computed from.
func Apply(doc *ir.Node, changes []Change) (*ir.Node, error) {
	res := doc.Clone()
	res.Parent = nil
	for _, c := range changes {
		if debug.Diff() {
			debug.Logf("apply %s\n", c)
		}
		var err error
		res, err = apply(res, c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func apply(root *ir.Node, c Change) (*ir.Node, error) {
	last, ok := c.Path.Last()
	if !ok {
		if c.Op == Add || c.Op == Remove {
			return nil, &ConflictError{Change: c, Reason: "cannot add or remove the root"}
		}
		v, err := changed(root, c)
		if err != nil {
			return nil, err
		}
		v.Parent = nil
		return v, nil
	}
	parent, ok := root.GetPath(c.Path.Parent())
	if !ok {
		return nil, &ConflictError{Change: c, Reason: "no parent value"}
	}
	switch {
	case parent.Type.IsDict():
		return root, applyDict(parent, last.String(), c)
	case parent.Type == ir.ListType && last.IsIndex:
		return root, applyList(parent, last.Index, c)
	}
	return nil, &ConflictError{Change: c, Reason: "parent is a " + parent.Type.String()}
}

func applyDict(y *ir.Node, k string, c Change) error {
	cur, ok := y.Lookup(k)
	if c.Op == Add {
		if ok {
			return &ConflictError{Change: c, Reason: "key exists"}
		}
		y.Set(k, c.To.Clone())
		return nil
	}
	if !ok {
		return &ConflictError{Change: c, Reason: "no such key"}
	}
	if c.Op == Remove {
		if !ir.Equal(cur, c.From) {
			return &ConflictError{Change: c, Reason: "value differs"}
		}
		i := cur.ParentIndex
		y.Fields = slices.Delete(y.Fields, i, i+1)
		y.Values = slices.Delete(y.Values, i, i+1)
		renumber(y)
		return nil
	}
	v, err := changed(cur, c)
	if err != nil {
		return err
	}
	y.Set(k, v)
	return nil
}

func applyList(y *ir.Node, i int, c Change) error {
	n := len(y.Values)
	if i < 0 {
		i += n
	}
	if c.Op == Add {
		if i < 0 || i > n {
			return &ConflictError{Change: c, Reason: "index out of range"}
		}
		v := c.To.Clone()
		v.Parent = y
		y.Values = slices.Insert(y.Values, i, v)
		renumber(y)
		return nil
	}
	if i < 0 || i >= n {
		return &ConflictError{Change: c, Reason: "index out of range"}
	}
	cur := y.Values[i]
	if c.Op == Remove {
		if !ir.Equal(cur, c.From) {
			return &ConflictError{Change: c, Reason: "value differs"}
		}
		y.Values = slices.Delete(y.Values, i, i+1)
		renumber(y)
		return nil
	}
	v, err := changed(cur, c)
	if err != nil {
		return err
	}
	v.Parent = y
	v.ParentIndex = i
	y.Values[i] = v
	return nil
}

// changed returns the value replacing cur for a Replace or Edit.
func changed(cur *ir.Node, c Change) (*ir.Node, error) {
	switch c.Op {
	case Replace:
		if !ir.Equal(cur, c.From) {
			return nil, &ConflictError{Change: c, Reason: "value differs"}
		}
		return c.To.Clone(), nil
	case Edit:
		if cur.Type != ir.StringType && cur.Type != ir.HandlerStringType {
			return nil, &ConflictError{Change: c, Reason: "not a string"}
		}
		dmp := diffpatch.New()
		if cur.String != dmp.DiffText1(c.Edits) {
			return nil, &ConflictError{Change: c, Reason: "text differs"}
		}
		res := cur.Clone()
		res.String = dmp.DiffText2(c.Edits)
		return res, nil
	}
	return nil, &ConflictError{Change: c, Reason: "unexpected op " + c.Op.String()}
}

func renumber(y *ir.Node) {
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
		if y.Type.IsDict() {
			v.ParentField = y.Fields[i]
		}
	}
}
