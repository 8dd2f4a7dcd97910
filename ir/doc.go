// Package ir provides the in-memory representation of arc documents.
//
// # Overview
//
// An arc document is a tree of [Node] values.  Node is a tagged union:
// the Type field selects which payload fields are meaningful.
//
//   - NullType, BoolType: null and booleans
//   - NumberType: exactly one of Uint64 (non-negative integers), Int64
//     (negative integers) or Float64 (finite floats)
//   - StringType: text
//   - CiteType: a KeyPath referring elsewhere in the same document
//   - ListType: Values in order
//   - DictType, FreeDictType: Fields and Values in parallel, keys unique,
//     insertion order preserved
//   - HandlerStringType, HandlerNumberType: a string or number carrying a
//     handler Tag for callers to interpret
//   - RecordType, KeyType: a Tag wrapping one payload value in Values[0]
//   - CharType, CommentType, EmptyLineType: single characters, retained
//     comments and blank line markers
//
// # Creating Nodes
//
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "b", Val: ir.FromString("first")},
//	    {Key: "a", Val: num},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})
//
// Setting a key that is already present replaces its value in place; the
// key keeps its original position.
//
// # Addressing
//
// A [KeyPath] is a sequence of [KeyNode] steps, each a dict key or a
// signed list index.  Two families of accessors exist:
//
//   - At and Get are total: misses of any kind return a null node.
//   - LookupIndex, Lookup and GetPath report misses with a boolean.
//
// Code inside this module uses the fallible forms so that an explicit
// null is never confused with an absent entry.
//
// # Display
//
// [Display] renders a node in canonical arc form.  Dicts with two or more
// entries are written one "key: value," per line, indented by four
// spaces; shorter dicts stay on one line.  Nodes also implement
// fmt.Formatter so %v prints the canonical form.
package ir
