package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/arc-format/arc/bridge"
	"github.com/signadot/arc-format/arc/format"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

type EncState struct {
	indent   int
	comments bool
	document bool
	lossy    bool

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.  Arc output is the
// display form of the value, which parses back to an equal value; JSON and
// YAML output go through the bridge and map free dicts to objects.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		var (
			d   []byte
			err error
		)
		if es.indent > 0 {
			d, err = bridge.MarshalJSONIndent(node, strings.Repeat(" ", es.indent), es.bridgeOpts()...)
		} else {
			d, err = bridge.MarshalJSON(node, es.bridgeOpts()...)
		}
		if err != nil {
			return err
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := bridge.MarshalYAML(node, es.bridgeOpts()...)
		if err != nil {
			return err
		}
		return writeString(w, string(d))
	case format.ArcFormat:
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if es.document && node != nil && node.Type.IsDict() {
		return encodeDocument(node, w, es)
	}
	return writeString(w, es.display(node)+"\n")
}

func (es *EncState) bridgeOpts() []bridge.ToOption {
	if es.lossy {
		return []bridge.ToOption{bridge.Lossy()}
	}
	return []bridge.ToOption{bridge.FreeDicts()}
}

func (es *EncState) display(y *ir.Node) string {
	if es.Color == nil {
		return ir.Display(y)
	}
	return ir.DisplayPainted(y, painter(es.Color))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeDocument(node *ir.Node, w io.Writer, es *EncState) error {
	for i, v := range node.Values {
		if err := writeComments(w, v.Comment, es); err != nil {
			return err
		}
		line := es.color(node.Type, FieldColor, token.QuoteKey(node.Fields[i])) +
			es.color(node.Type, SepColor, " = ") +
			es.display(v)
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return writeComments(w, node.Comment, es)
}

func writeComments(w io.Writer, c *ir.Node, es *EncState) error {
	if !es.comments || c == nil {
		return nil
	}
	for _, v := range c.Values {
		ln := es.color(ir.CommentType, CommentColor, ir.CommentText(v))
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
