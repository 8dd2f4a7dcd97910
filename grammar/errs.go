package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/arc-format/arc/token"
)

var (
	ErrSyntax  = errors.New("syntax error")
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError reports the furthest position the grammar reached together
// with the rules that could have matched there.
type SyntaxError struct {
	Pos      *token.Pos
	Expected []Rule
	// Err is ErrTooDeep when the nesting limit was hit, nil otherwise.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v at %s", ErrSyntax, e.Err, e.Pos)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at %s", ErrSyntax, e.Pos)
	}
	return fmt.Sprintf("%s at %s: expected %s", ErrSyntax, e.Pos, e.ExpectedString())
}

// ExpectedString lists the expected rules as "a, b, or c".
func (e *SyntaxError) ExpectedString() string {
	names := make([]string, len(e.Expected))
	for i, r := range e.Expected {
		names[i] = r.String()
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
