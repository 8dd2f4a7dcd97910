// Package grammar recognizes arc text.
//
// The grammar is an ordered choice: alternatives are tried left to right
// and the first that matches wins.  Each rule is one method of an
// unexported parser; combinators (seq, alt, opt, rep, not) restore the
// input position and the pending node stack on failure so no rule ever
// leaves partial state behind.
//
// Between the items of a non-atomic rule an implicit skip consumes
// whitespace and comments.  Atomic rules (numbers, symbols, string
// bodies, bare words) suspend the skip and produce no inner nodes;
// compound atomic rules suspend the skip but keep their inner nodes so
// that, say, a Number node still exposes its Sign, Integer and tag.
//
// The result of a parse is a tree of [Node] spans.  Comments are kept in
// the tree where the skip consumed them; whitespace is not.  On failure
// a [SyntaxError] reports the furthest position any rule reached along
// with the rules that were tried there.
package grammar
