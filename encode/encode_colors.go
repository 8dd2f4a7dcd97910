package encode

import (
	"strings"

	"github.com/signadot/arc-format/arc/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.CommentType, Attr: ValueColor}] = color.BlueString
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.HandlerNumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.CiteType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for _, t := range []ir.Type{ir.DictType, ir.FreeDictType} {
		able.Type = t
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	}

	able.Attr = ValueColor
	for _, t := range []ir.Type{ir.StringType, ir.HandlerStringType, ir.CharType} {
		able.Type = t
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// painter adapts a color function to the parts ir.DisplayPainted reports.
func painter(c func(ir.Type, ColorAttr, string) string) ir.Painter {
	return func(t ir.Type, p ir.Part, s string) string {
		var a ColorAttr
		switch p {
		case ir.ValuePart:
			a = ValueColor
		case ir.KeyPart:
			a = FieldColor
		case ir.TagPart:
			a = TagColor
		case ir.SepPart:
			a = SepColor
		case ir.CommentPart:
			a = CommentColor
		}
		return c(t, a, s)
	}
}
