package ir

import "strconv"

// At returns element i of a list, counting from the end when i is
// negative.  Misses, including any y that is not a list, yield a fresh
// null node.
func (y *Node) At(i int) *Node {
	if v, ok := y.LookupIndex(i); ok {
		return v
	}
	return Null()
}

// Get returns the value of key k in a dict.  Misses, including any y that
// is not a dict, yield a fresh null node.
func (y *Node) Get(k string) *Node {
	if v, ok := y.Lookup(k); ok {
		return v
	}
	return Null()
}

// LookupIndex is the fallible form of At.
func (y *Node) LookupIndex(i int) (*Node, bool) {
	if y == nil || y.Type != ListType {
		return nil, false
	}
	n := len(y.Values)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, false
	}
	return y.Values[i], true
}

// Lookup is the fallible form of Get.
func (y *Node) Lookup(k string) (*Node, bool) {
	if y == nil || !y.Type.IsDict() {
		return nil, false
	}
	for i, f := range y.Fields {
		if f == k {
			return y.Values[i], true
		}
	}
	return nil, false
}

// Step follows one path node: keys index dicts, indexes index lists, and
// an index applied to a dict looks up its decimal text.
func (y *Node) Step(k KeyNode) (*Node, bool) {
	if !k.IsIndex {
		return y.Lookup(k.Key)
	}
	if y != nil && y.Type.IsDict() {
		return y.Lookup(strconv.Itoa(k.Index))
	}
	return y.LookupIndex(k.Index)
}

// GetPath follows p from y.  The empty path yields y.
func (y *Node) GetPath(p KeyPath) (*Node, bool) {
	cur := y
	for _, k := range p {
		next, ok := cur.Step(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
