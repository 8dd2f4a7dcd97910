package ir

import (
	"maps"
	"slices"
)

// Node is a tagged union; Type selects which payload fields are
// meaningful.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields and Values are parallel for dicts.  Lists use Values only,
	// and records and keys keep their payload in Values[0].
	Fields []string
	Values []*Node

	// Tag is the handler symbol of handler strings and numbers, and the
	// tag of records and keys.
	Tag string
	// Comment holds the comments preceding this node, as a CommentType
	// node whose Values are the individual comments.
	Comment     *Node
	CommentKind CommentKind

	String string
	Bool   bool
	Char   rune
	// Exactly one of the number fields is set on numbers.  Int64 only
	// ever holds negative values; non-negative integers use Uint64.
	Uint64  *uint64
	Int64   *int64
	Float64 *float64
	Path    KeyPath
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Tag = y.Tag
	dst.CommentKind = y.CommentKind
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Char = y.Char
	dst.Uint64, dst.Int64, dst.Float64 = nil, nil, nil
	if y.Uint64 != nil {
		u := *y.Uint64
		dst.Uint64 = &u
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Path = slices.Clone(y.Path)
	dst.Comment = nil
	if y.Comment != nil {
		dst.Comment = y.Comment.CloneTo(&Node{})
		dst.Comment.Parent = dst
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromChar(r rune) *Node {
	return &Node{
		Type: CharType,
		Char: r,
	}
}

func FromCite(p KeyPath) *Node {
	return &Node{
		Type: CiteType,
		Path: slices.Clone(p),
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ListType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a dict in the order of kvs.  A repeated key
// overwrites the earlier value and keeps the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{Type: DictType}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds a dict with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: DictType}
	for _, k := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(k, yMap[k])
	}
	return res
}

func NewDict() *Node     { return &Node{Type: DictType} }
func NewFreeDict() *Node { return &Node{Type: FreeDictType} }
func NewList() *Node     { return &Node{Type: ListType} }

// FromRecord builds a record: a value carrying a handler tag.
func FromRecord(tag string, v *Node) *Node {
	return wrap(RecordType, tag, v)
}

// FromKey builds a tagged key.
func FromKey(tag string, v *Node) *Node {
	return wrap(KeyType, tag, v)
}

func wrap(t Type, tag string, v *Node) *Node {
	res := &Node{Type: t, Tag: tag}
	res.Append(v)
	return res
}

func FromHandlerString(tag, v string) *Node {
	return &Node{
		Type:   HandlerStringType,
		Tag:    tag,
		String: v,
	}
}

// FromHandlerNumber builds a handler number carrying the numeric payload
// of num, which must be a number.
func FromHandlerNumber(tag string, num *Node) *Node {
	res := num.Clone()
	res.Parent = nil
	res.Type = HandlerNumberType
	res.Tag = tag
	return res
}

func FromComment(kind CommentKind, text string) *Node {
	return &Node{
		Type:        CommentType,
		CommentKind: kind,
		String:      text,
	}
}

func EmptyLine() *Node {
	return &Node{Type: EmptyLineType}
}

// Set stores v under k in the dict y.  An existing key is overwritten in
// place, keeping its position.
func (y *Node) Set(k string, v *Node) {
	v.Parent = y
	v.ParentField = k
	for i, f := range y.Fields {
		if f == k {
			v.ParentIndex = i
			y.Values[i] = v
			return
		}
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, k)
	y.Values = append(y.Values, v)
}

// Append adds v as the last element of the list y.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// Len returns the number of entries of a container and 0 otherwise.
func (y *Node) Len() int {
	switch y.Type {
	case ListType, DictType, FreeDictType:
		return len(y.Values)
	}
	return 0
}

// Payload returns the wrapped value of a record or key, or nil.
func (y *Node) Payload() *Node {
	if (y.Type == RecordType || y.Type == KeyType) && len(y.Values) == 1 {
		return y.Values[0]
	}
	return nil
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) the children.  Children are visited only when the first
// call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

// KeyPath returns the path from the root to y, following parent links.
func (y *Node) KeyPath() KeyPath {
	var rev KeyPath
	for n := y; n.Parent != nil; n = n.Parent {
		if n.Parent.Type.IsDict() {
			rev = append(rev, Key(n.ParentField))
		} else {
			rev = append(rev, Index(n.ParentIndex))
		}
	}
	slices.Reverse(rev)
	return rev
}
