package parse

import (
	"fmt"

	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

type DirectiveKind int

const (
	Include DirectiveKind = iota
	Import
)

func (k DirectiveKind) String() string {
	switch k {
	case Include:
		return "include"
	case Import:
		return "import"
	}
	return fmt.Sprintf("DirectiveKind(%d)", int(k))
}

// Directive is an @include or @import statement.
type Directive struct {
	Kind   DirectiveKind
	Path   string
	Symbol string
	Pos    *token.Pos
	// Scope is the namespace in effect where the directive appeared.
	Scope ir.KeyPath
}

// Loader resolves directives.  An include must load to a dict whose
// entries are merged into the enclosing scope; an import may load to any
// value, which takes the place of the directive.
type Loader interface {
	Load(Directive) (*ir.Node, error)
}

type LoaderFunc func(Directive) (*ir.Node, error)

func (f LoaderFunc) Load(d Directive) (*ir.Node, error) {
	return f(d)
}

// Record returns the value an import stands for when no loader is set: a
// record tagged with the directive kind holding its path and symbol.
func (d Directive) Record() *ir.Node {
	return ir.FromRecord(d.Kind.String(), ir.FromKeyVals([]ir.KeyVal{
		{Key: "path", Val: ir.FromString(d.Path)},
		{Key: "symbol", Val: ir.FromString(d.Symbol)},
	}))
}
