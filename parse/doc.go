// Package parse builds ir nodes from arc text.
//
// # Usage
//
//	// Parse a document
//	node, err := parse.Parse([]byte("{server}\nport = 8080\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse a single value
//	node, err := parse.ParseData([]byte(`[1, "two", $server.port]`))
//
//	// Keep comments and source positions
//	positions := map[*ir.Node]*token.Pos{}
//	node, err := parse.Parse(data, parse.ParseComments(true), parse.ParsePositions(positions))
//
// # Documents
//
// A document is a sequence of statements.  Pairs (key = value) are written
// into the container selected by the last header; {a.b} selects a dict and
// [a.b] a list, creating them as needed.  Revisiting a header merges into
// the existing container.  A header starting with dots is relative to the
// previous one: {.c} is a child of it and {..c} a sibling.
//
// Within a list scope, "* k = v ..." appends a free dict holding the pairs
// and "& v ..." appends each value.
//
// # Errors
//
// Syntax errors are *grammar.SyntaxError.  Text that matches the grammar
// but does not denote a value, such as an integer literal out of range or
// a header conflicting with an existing value, gives a *LiteralError.
//
// # Directives
//
// @include and @import are passed to the Loader set with WithLoader.
// Without one, includes are dropped and imports stand as records; use
// ParseDirectives to collect them either way.
//
// # Related Packages
//
//   - github.com/signadot/arc-format/arc/grammar - parse trees
//   - github.com/signadot/arc-format/arc/ir - values
//   - github.com/signadot/arc-format/arc/encode - encode values to text
package parse
