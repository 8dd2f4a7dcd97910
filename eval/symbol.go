package eval

import "github.com/signadot/arc-format/arc/ir"

// Handler interprets tagged strings and numbers carrying its tag.
type Handler interface {
	String() string
	// Handle returns the value that y stands for.  doc is the document
	// y belongs to.
	Handle(y *ir.Node, doc *ir.Node) (*ir.Node, error)
}

type name string

func (s name) String() string {
	return string(s)
}

// HandlerFunc adapts a function to a Handler for tag.
func HandlerFunc(tag string, f func(y, doc *ir.Node) (*ir.Node, error)) Handler {
	return &funcHandler{name: name(tag), f: f}
}

type funcHandler struct {
	name
	f func(y, doc *ir.Node) (*ir.Node, error)
}

func (h *funcHandler) Handle(y, doc *ir.Node) (*ir.Node, error) {
	return h.f(y, doc)
}
