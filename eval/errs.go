package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/arc-format/arc/ir"
)

var (
	ErrUnresolved    = errors.New("unresolved cite")
	ErrCycle         = errors.New("cite cycle")
	ErrNoHandler     = errors.New("no handler")
	ErrHandler       = errors.New("handler failed")
	ErrHandlerExists = errors.New("handler exists")
)

// CiteError reports a cite found at At whose target Cite could not be
// resolved.
type CiteError struct {
	At   ir.KeyPath
	Cite ir.KeyPath
	// Suggest is the closest existing path, if any.
	Suggest string
	Err     error
}

func (e *CiteError) Error() string {
	msg := fmt.Sprintf("%v: $%s at %s", e.Err, e.Cite.Quoted(), pathText(e.At))
	if e.Suggest != "" {
		msg += fmt.Sprintf(" (did you mean $%s?)", e.Suggest)
	}
	return msg
}

func (e *CiteError) Unwrap() error {
	return e.Err
}

// HandlerError reports a failure to handle the tagged value at Path.
type HandlerError struct {
	Path ir.KeyPath
	Tag  string
	Err  error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s %q at %s: %v", ErrHandler, e.Tag, pathText(e.Path), e.Err)
}

func (e *HandlerError) Is(target error) bool {
	return target == ErrHandler
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

func pathText(p ir.KeyPath) string {
	if len(p) == 0 {
		return "<root>"
	}
	return p.Quoted()
}
