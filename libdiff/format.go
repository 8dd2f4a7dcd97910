package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/arc-format/arc/ir"
)

// String renders c on one line.
func (c Change) String() string {
	head := c.Op.Sigil() + " " + pathText(c.Path)
	switch c.Op {
	case Add:
		return head + ": " + oneLine(c.To)
	case Remove:
		return head + ": " + oneLine(c.From)
	case Edit:
		return head + ": " + strconv.Quote(editText(c.Edits))
	}
	return head + ": " + oneLine(c.From) + " => " + oneLine(c.To)
}

// Format renders changes one per line.
func Format(changes []Change) string {
	b := &strings.Builder{}
	for _, c := range changes {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func oneLine(y *ir.Node) string {
	if y == nil {
		return "null"
	}
	return strings.Join(strings.Fields(ir.Display(y)), " ")
}
