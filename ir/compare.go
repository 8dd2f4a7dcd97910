package ir

import (
	"cmp"
	"strings"
)

// EqualBool reports whether y is the boolean b.  No other type compares
// equal to a boolean.
func (y *Node) EqualBool(b bool) bool {
	return y != nil && y.Type == BoolType && y.Bool == b
}

// EqualString reports whether y is the plain string s.  Handler strings
// do not match.
func (y *Node) EqualString(s string) bool {
	return y != nil && y.Type == StringType && y.String == s
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Dicts compare entry by entry in order, so dicts with the same entries
// in a different order are not equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	if c := strings.Compare(a.Tag, b.Tag); c != 0 {
		return c
	}

	switch a.Type {
	case NullType, EmptyLineType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType, HandlerNumberType:
		return compareNumbers(a, b)
	case CharType:
		return cmp.Compare(a.Char, b.Char)
	case StringType, HandlerStringType:
		return strings.Compare(a.String, b.String)
	case CommentType:
		if c := cmp.Compare(a.CommentKind, b.CommentKind); c != 0 {
			return c
		}
		return strings.Compare(a.String, b.String)
	case CiteType:
		return compareStrings(pathTexts(a.Path), pathTexts(b.Path))
	case ListType, RecordType, KeyType:
		return compareValues(a.Values, b.Values)
	case DictType, FreeDictType:
		if c := compareStrings(a.Fields, b.Fields); c != 0 {
			return c
		}
		return compareValues(a.Values, b.Values)
	}
	return 0
}

// Numbers compare by kind first (unsigned, negative, float) so that 1 and
// 1.0 stay distinct, then by value.
func compareNumbers(a, b *Node) int {
	subA, subB := numberSubRank(a), numberSubRank(b)
	if subA != subB {
		return cmp.Compare(subA, subB)
	}
	switch {
	case a.Uint64 != nil:
		return cmp.Compare(*a.Uint64, *b.Uint64)
	case a.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.Uint64 != nil:
		return 1
	case n.Float64 != nil:
		return 2
	}
	return 3
}

func compareValues(a, b []*Node) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareStrings(a, b []string) int {
	for i := range min(len(a), len(b)) {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func pathTexts(p KeyPath) []string {
	res := make([]string, len(p))
	for i, k := range p {
		res[i] = k.Quoted()
		if k.IsIndex {
			res[i] = "#" + res[i]
		}
	}
	return res
}
