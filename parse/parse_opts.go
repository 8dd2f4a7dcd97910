package parse

import (
	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

type parseOpts struct {
	comments   bool
	positions  map[*ir.Node]*token.Pos
	loader     Loader
	directives *[]Directive
	maxDepth   int
}

func (o *parseOpts) grammarOpts() []grammar.Option {
	if o.maxDepth > 0 {
		return []grammar.Option{grammar.MaxDepth(o.maxDepth)}
	}
	return nil
}

type ParseOption func(*parseOpts)

// ParseComments keeps comments, attaching each run of comments to the
// Comment field of the value that follows it.  Comments after the last
// value attach to the root.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePositions records in m the source position each built node
// started at.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// WithLoader resolves @include and @import directives through l.
func WithLoader(l Loader) ParseOption {
	return func(o *parseOpts) { o.loader = l }
}

// ParseDirectives appends every directive met during the parse to dst,
// whether or not a loader is set.
func ParseDirectives(dst *[]Directive) ParseOption {
	return func(o *parseOpts) { o.directives = dst }
}

// MaxDepth bounds the nesting of inline literals and block comments.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
