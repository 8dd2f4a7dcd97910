package ir

import (
	"fmt"
	"strings"

	"github.com/signadot/arc-format/arc/token"
)

// Part names the piece of display text a Painter is asked to color.
type Part int

const (
	ValuePart Part = iota
	KeyPart
	TagPart
	SepPart
	CommentPart
)

// Painter decorates display text, typically with terminal colors.  t is
// the type of the node the text belongs to.
type Painter func(t Type, part Part, s string) string

const indentUnit = "    "

// Display returns the canonical text of y.  For trees built only from
// null, booleans, numbers, strings, lists and dicts, parsing the result as
// a value yields a tree equal to y.
func Display(y *Node) string {
	return DisplayPainted(y, nil)
}

// DisplayPainted is Display with every piece of text passed through p.
func DisplayPainted(y *Node, p Painter) string {
	d := &displayer{paint: p}
	d.node(y, 0)
	return d.b.String()
}

// Format makes nodes print in their canonical form with fmt verbs %v and
// %s.
func (y *Node) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, Display(y))
	case 'q':
		fmt.Fprintf(f, "%q", Display(y))
	default:
		fmt.Fprintf(f, "%%!%c(*ir.Node=%s)", verb, Display(y))
	}
}

type displayer struct {
	b     strings.Builder
	paint Painter
}

func (d *displayer) put(t Type, part Part, s string) {
	if d.paint != nil {
		s = d.paint(t, part, s)
	}
	d.b.WriteString(s)
}

func (d *displayer) node(y *Node, indent int) {
	if y == nil {
		d.put(NullType, ValuePart, "null")
		return
	}
	switch y.Type {
	case NullType:
		d.put(y.Type, ValuePart, "null")
	case BoolType:
		if y.Bool {
			d.put(y.Type, ValuePart, "true")
		} else {
			d.put(y.Type, ValuePart, "false")
		}
	case NumberType:
		d.put(y.Type, ValuePart, y.NumberText())
	case CharType:
		d.put(y.Type, ValuePart, charText(y.Char))
	case StringType:
		d.put(y.Type, ValuePart, token.Quote(y.String))
	case CiteType:
		d.put(y.Type, ValuePart, "$"+y.Path.Quoted())
	case ListType:
		d.put(y.Type, SepPart, "[")
		for i, v := range y.Values {
			if i > 0 {
				d.put(y.Type, SepPart, ", ")
			}
			d.node(v, indent)
		}
		d.put(y.Type, SepPart, "]")
	case DictType, FreeDictType:
		d.dict(y, indent)
	case RecordType:
		d.record(y, indent)
	case KeyType:
		d.put(y.Type, TagPart, y.Tag)
		d.put(y.Type, SepPart, ":")
		d.node(y.Payload(), indent)
	case HandlerStringType:
		d.put(y.Type, TagPart, y.Tag)
		d.put(y.Type, ValuePart, token.Quote(y.String))
	case HandlerNumberType:
		d.put(y.Type, ValuePart, y.NumberText())
		d.put(y.Type, TagPart, y.Tag)
	case CommentType:
		d.comment(y, indent)
	case EmptyLineType:
	}
}

func (d *displayer) dict(y *Node, indent int) {
	switch len(y.Values) {
	case 0:
		d.put(y.Type, SepPart, "{}")
		return
	case 1:
		d.put(y.Type, SepPart, "{")
		d.put(y.Type, KeyPart, token.QuoteKey(y.Fields[0]))
		d.put(y.Type, SepPart, ":")
		d.node(y.Values[0], indent)
		d.put(y.Type, SepPart, "}")
		return
	}
	inner := strings.Repeat(indentUnit, indent+1)
	d.put(y.Type, SepPart, "{")
	d.b.WriteByte('\n')
	for i, v := range y.Values {
		d.b.WriteString(inner)
		d.put(y.Type, KeyPart, token.QuoteKey(y.Fields[i]))
		d.put(y.Type, SepPart, ": ")
		d.node(v, indent+1)
		d.put(y.Type, SepPart, ",")
		d.b.WriteByte('\n')
	}
	d.b.WriteString(strings.Repeat(indentUnit, indent))
	d.put(y.Type, SepPart, "}")
}

func (d *displayer) record(y *Node, indent int) {
	v := y.Payload()
	if (y.Tag == "import" || y.Tag == "include") && v != nil && v.Type.IsDict() {
		path, sym := v.Get("path"), v.Get("symbol")
		d.put(y.Type, TagPart, "@"+y.Tag)
		d.put(y.Type, SepPart, "(")
		d.put(StringType, ValuePart, token.Quote(path.String))
		d.put(y.Type, SepPart, ", ")
		d.put(y.Type, ValuePart, sym.String)
		d.put(y.Type, SepPart, ")")
		return
	}
	d.put(y.Type, TagPart, y.Tag)
	d.put(y.Type, SepPart, "(")
	d.node(v, indent)
	d.put(y.Type, SepPart, ")")
}

func (d *displayer) comment(y *Node, indent int) {
	if len(y.Values) > 0 {
		for i, c := range y.Values {
			if i > 0 {
				d.b.WriteByte('\n')
				d.b.WriteString(strings.Repeat(indentUnit, indent))
			}
			d.comment(c, indent)
		}
		return
	}
	d.put(y.Type, CommentPart, CommentText(y))
}

// CommentText returns the source form of a single comment.
func CommentText(y *Node) string {
	if y.CommentKind == BlockComment {
		return "/*" + y.String + "*/"
	}
	return "//" + y.String
}

func charText(r rune) string {
	switch r {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	}
	return "'" + string(r) + "'"
}
