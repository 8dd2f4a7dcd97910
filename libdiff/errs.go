package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/arc-format/arc/ir"
)

// ErrConflict is returned by Apply when the document does not hold what a
// change expects.
var ErrConflict = errors.New("change does not apply")

type ConflictError struct {
	Change Change
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Change.Op, pathText(e.Change.Path), e.Reason)
}

func (e *ConflictError) Is(err error) bool {
	return err == ErrConflict
}

func pathText(p ir.KeyPath) string {
	if len(p) == 0 {
		return "<root>"
	}
	return p.Quoted()
}
