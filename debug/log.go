package debug

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/ir"
)

type Arc struct{ *ir.Node }

func (y Arc) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %#v", y.Node)
	}
	return buf.String()
}

// Logf writes a formatted message to standard error.  *ir.Node arguments
// are rendered in arc form and JSON trees as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Arc{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
