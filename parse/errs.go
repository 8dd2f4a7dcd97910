package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/arc-format/arc/token"
)

var (
	ErrLiteral   = errors.New("literal error")
	ErrOverflow  = errors.New("value out of range")
	ErrConflict  = errors.New("conflicting namespace")
	ErrLoad      = errors.New("directive load failed")
	ErrBadHeader = errors.New("bad relative header")
)

// LiteralError reports syntactically valid text that could not be turned
// into a value.
type LiteralError struct {
	Pos  *token.Pos
	End  *token.Pos
	Text string
	Err  error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("%s at %s: %v (%q)", ErrLiteral, e.Pos, e.Err, e.Text)
}

func (e *LiteralError) Is(target error) bool {
	return target == ErrLiteral
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
