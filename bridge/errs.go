package bridge

import (
	"errors"
	"fmt"

	"github.com/signadot/arc-format/arc/ir"
)

var (
	ErrUnrepresentable = errors.New("no JSON representation")
	ErrUnsupported     = errors.New("unsupported JSON value")
)

// Error reports a value that could not be converted to JSON, with the path
// at which it was found.
type Error struct {
	Path ir.KeyPath
	Type ir.Type
}

func (e *Error) Error() string {
	p := e.Path.Quoted()
	if p == "" {
		p = "<root>"
	}
	return fmt.Sprintf("%s at %s: %s", ErrUnrepresentable, p, e.Type)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnrepresentable
}
