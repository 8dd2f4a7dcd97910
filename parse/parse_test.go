package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/token"
)

type parseTest struct {
	in  string
	out string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``, out: `{}`},
		{in: `x = 1`, out: `{x:1}`},
		{in: `x: hello`, out: `{x:"hello"}`},
		{in: `x = "a\"b"`, out: `{x:"a\"b"}`},
		{in: `x = 'it\'s'`, out: `{x:"it's"}`},
		{in: `x = [1, 2, [3]]`, out: `{x:[1, 2, [3]]}`},
		{in: `x = {a = 1; b: 2,}`, out: "{x:{\n    a: 1,\n    b: 2,\n}}"},
		{in: `a.b.c = true`, out: `{a:{b:{c:true}}}`},
		{in: `x = null, y = false`, out: "{\n    x: null,\n    y: false,\n}"},
		{in: `x = -7`, out: `{x:-7}`},
		{in: `x = 1.25e2`, out: `{x:125.0}`},
		{in: `x = 10km`, out: `{x:10km}`},
		{in: `x = 0xFF_u8`, out: `{x:255u8}`},
		{in: `x = sql"select 1"`, out: `{x:sql"select 1"}`},
		{in: `x = $a.b`, out: `{x:$a.b}`},
		{in: `{a}`, out: `{a:{}}`},
		{in: `[a]`, out: `{a:[]}`},
		{in: `{a = 1}`, out: `{a:1}`},
		{in: "\"a b\" = 1", out: `{"a b":1}`},
	}
	for _, pt := range pts {
		y, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, ir.Display(y)); diff != "" {
			t.Errorf("# doc\n%s\n# diff (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestRootType(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{"", ir.DictType},
		{"x = 1", ir.FreeDictType},
		{"{a}\nx = 1", ir.DictType},
		{"{x = 1}\ny = 2", ir.FreeDictType},
		{"{x = 1}\n{a}", ir.DictType},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if y.Type != tt.want {
			t.Errorf("%q: got %s, want %s", tt.in, y.Type, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inner := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromString("x y")}})
	vals := []*ir.Node{
		ir.Null(),
		ir.FromBool(true),
		ir.FromUint(math.MaxUint64),
		ir.FromInt(math.MinInt64),
		mustFloat(t, 1.5),
		mustFloat(t, -0.25),
		ir.FromString(""),
		ir.FromString("tab\there \"quoted\" back\\slash\nnewline"),
		ir.NewList(),
		ir.NewDict(),
		ir.FromSlice([]*ir.Node{ir.FromUint(1), ir.FromString("s"), ir.Null(), ir.FromBool(false)}),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(-2), mustFloat(t, 3.0)})},
			{Key: "a", Val: ir.NewDict()},
			{Key: "c", Val: inner},
			{Key: "with space", Val: ir.FromUint(0)},
			{Key: "7", Val: ir.FromString("seven")},
		}),
	}
	for _, v := range vals {
		txt := ir.Display(v)
		got, err := ParseData([]byte(txt))
		if err != nil {
			t.Errorf("%s: %v", txt, err)
			continue
		}
		if !ir.Equal(v, got) {
			t.Errorf("round trip of %s gave %s", txt, ir.Display(got))
		}
	}
}

func TestNumericBases(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0b101", 5},
		{"0o17", 15},
		{"0xFF", 255},
		{"0XfF", 255},
		{"0B10", 2},
		{"1_000", 1000},
		{"2**10", 1024},
	}
	for _, tt := range tests {
		y, err := ParseData([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if y.Uint64 == nil || *y.Uint64 != tt.want {
			t.Errorf("%s: got %s, want %d", tt.in, ir.Display(y), tt.want)
		}
	}
}

func TestDecimalForms(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.", 1},
		{".5", 0.5},
		{"-1.", -1},
		{"+.5", 0.5},
		{"1_0.2_5", 10.25},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"2**-1", 0.5},
		{"1.5**2", 2.25},
	}
	for _, tt := range tests {
		y, err := ParseData([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if y.Float64 == nil || *y.Float64 != tt.want {
			t.Errorf("%s: got %s, want %v", tt.in, ir.Display(y), tt.want)
		}
	}
}

func TestIntegerPowerSign(t *testing.T) {
	y, err := ParseData([]byte("-2**3"))
	if err != nil {
		t.Fatal(err)
	}
	if i, ok := y.Int(); !ok || i != -8 {
		t.Errorf("got %s, want -8", ir.Display(y))
	}
	y, err = ParseData([]byte("-2**2"))
	if err != nil {
		t.Fatal(err)
	}
	if y.Uint64 == nil || *y.Uint64 != 4 {
		t.Errorf("got %s, want 4", ir.Display(y))
	}
}

func TestLiteralErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"x = 18446744073709551616", ErrOverflow},
		{"x = -9223372036854775809", ErrOverflow},
		{"x = 0x10000000000000000", ErrOverflow},
		{"x = 2**64", ErrOverflow},
		{"x = 10.0**400", ErrOverflow},
		{"x = 1e400", ErrOverflow},
		{"a = 1\n{a.b}", ErrConflict},
		{"[a]\n{a}", ErrConflict},
		{"{a}\n[a]", ErrConflict},
		{"[a]\n& 1\n{a.x}", ErrConflict},
		{"a = [1]\na.5 = 2", ErrConflict},
		{"a = [1]\na.k = 2", ErrConflict},
		{"{.a}", ErrBadHeader},
		{"{a}\n{...b}", ErrBadHeader},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.err)
			continue
		}
		if !errors.Is(err, ErrLiteral) {
			t.Errorf("%q: %v is not a literal error", tt.in, err)
		}
	}
}

func TestLiteralErrorPosition(t *testing.T) {
	_, err := ParseString("ok = 1\nbig = 99999999999999999999")
	var le *LiteralError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want a *LiteralError", err)
	}
	if le.Pos.Line() != 1 || le.Pos.Col() != 6 {
		t.Errorf("got position %s, want line 1 col 6", le.Pos)
	}
	if le.Text != "99999999999999999999" {
		t.Errorf("got text %q", le.Text)
	}
}

func TestSyntaxErrorSurfaces(t *testing.T) {
	_, err := ParseString("x = ")
	if !errors.Is(err, grammar.ErrSyntax) {
		t.Fatalf("got %v, want a syntax error", err)
	}
}

func TestNamespaceMerge(t *testing.T) {
	y, err := ParseString("{a}\nx=1\n{b}\ny=2\n{a}\nz=3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, y.Fields); diff != "" {
		t.Errorf("root fields (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "z"}, y.Get("a").Fields); diff != "" {
		t.Errorf("a fields (-want +got):\n%s", diff)
	}
}

func TestRelativeHeaders(t *testing.T) {
	y, err := ParseString("{a}\nx=1\n{.b}\ny=2\n{..c}\nz=3\n{.d}\nw=4")
	if err != nil {
		t.Fatal(err)
	}
	want := "{a:{\n    x: 1,\n    b: {y:2},\n    c: {\n        z: 3,\n        d: {w:4},\n    },\n}}"
	if diff := cmp.Diff(want, ir.Display(y)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListForms(t *testing.T) {
	y, err := ParseString("[ns]\n* k=1\n& 2\n& 3")
	if err != nil {
		t.Fatal(err)
	}
	ns := y.Get("ns")
	if diff := cmp.Diff("[{k:1}, 2, 3]", ir.Display(ns)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if ns.At(0).Type != ir.FreeDictType {
		t.Errorf("insert built a %s", ns.At(0).Type)
	}
	y, err = ParseString("[ns]\n* a=1 b=2\n* a=3\n& x y")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("[{\n    a: 1,\n    b: 2,\n}, {a:3}, \"x y\"]", ir.Display(y.Get("ns"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListScopePairs(t *testing.T) {
	tests := []parseTest{
		{"[a]\nk = 2", "[{k:2}]"},
		{"[a]\nk = 2\nm = 3", "[{k:2}, {m:3}]"},
		{"[a]\n& 1\nk = 2", "[1, {k:2}]"},
		{"[a]\n& 1\n\nk = 2", "[1, {k:2}]"},
		{"[a]\n& 1\n// c\nk: 2", "[1, {k:2}]"},
		{"[a]\n{x: 1, y: 2}", "[{\n    x: 1,\n    y: 2,\n}]"},
	}
	for _, tt := range tests {
		y, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		a := y.Get("a")
		if diff := cmp.Diff(tt.out, ir.Display(a)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
		for i, v := range a.Values {
			if v.Type.IsDict() && v.Type != ir.FreeDictType {
				t.Errorf("%q: element %d is a %s", tt.in, i, v.Type)
			}
		}
	}
}

func TestIndexPairs(t *testing.T) {
	y, err := ParseString("a = [1, {x: 1}]\na.0 = 2\na.1.x = 3\nb.\"c\".0 = v")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    a: [2, {x:3}],\n    b: {c:{0:\"v\"}},\n}"
	if diff := cmp.Diff(want, ir.Display(y)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if p := y.Get("a").At(0).KeyPath().String(); p != "a.0" {
		t.Errorf("replaced element at %q", p)
	}
}

func TestIndexHeaders(t *testing.T) {
	y, err := ParseString("[l]\n& {} 2\n{l.0}\nk = v\n[m]\n& 1\n[m]\n& 2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("[{k:\"v\"}, 2]", ir.Display(y.Get("l"))); diff != "" {
		t.Errorf("l (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("[1, 2]", ir.Display(y.Get("m"))); diff != "" {
		t.Errorf("m (-want +got):\n%s", diff)
	}
}

func TestOverwrite(t *testing.T) {
	y, err := ParseString("a = 1\nb = 2\na = 3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{\n    a: 3,\n    b: 2,\n}", ir.Display(y)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCite(t *testing.T) {
	y, err := ParseData([]byte("$a.b.3"))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.CiteType {
		t.Fatalf("got %s", y.Type)
	}
	want := ir.KeyPath{ir.Key("a"), ir.Key("b"), ir.Index(3)}
	if !want.Equal(y.Path) {
		t.Errorf("got path %v, want %v", y.Path, want)
	}
	if got := ir.Display(y); got != "$a.b.3" {
		t.Errorf("display %q", got)
	}
}

func TestParseKeyPath(t *testing.T) {
	p, err := ParseKeyPath(`a."b c".0`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.KeyPath{ir.Key("a"), ir.Key("b c"), ir.Index(0)}
	if !want.Equal(p) {
		t.Errorf("got %v", p)
	}
	if _, err := ParseKeyPath("a..b"); err == nil {
		t.Error("expected an error")
	}
}

func TestDirectivesWithoutLoader(t *testing.T) {
	var ds []Directive
	y, err := ParseString("{cfg}\n@include(\"base.arc\", base)\nx = @import('v.arc', v)", ParseDirectives(&ds))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 2 {
		t.Fatalf("got %d directives", len(ds))
	}
	if ds[0].Kind != Include || ds[0].Path != "base.arc" || ds[0].Symbol != "base" {
		t.Errorf("include: %+v", ds[0])
	}
	if !ds[0].Scope.Equal(ir.KeyPath{ir.Key("cfg")}) {
		t.Errorf("include scope %v", ds[0].Scope)
	}
	if ds[1].Kind != Import || ds[1].Path != "v.arc" {
		t.Errorf("import: %+v", ds[1])
	}
	if got := ir.Display(y.Get("cfg").Get("x")); got != `@import("v.arc", v)` {
		t.Errorf("import value %s", got)
	}
}

func TestDirectivesWithLoader(t *testing.T) {
	l := LoaderFunc(func(d Directive) (*ir.Node, error) {
		switch d.Kind {
		case Include:
			return ir.FromKeyVals([]ir.KeyVal{{Key: "y", Val: ir.FromUint(2)}}), nil
		}
		if d.Symbol == "bad" {
			return nil, errors.New("no such symbol")
		}
		return ir.FromUint(7), nil
	})
	y, err := ParseString("@include(\"a\", a)\nx = @import(\"b\", b)", WithLoader(l))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{\n    y: 2,\n    x: 7,\n}", ir.Display(y)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, err = ParseString("x = @import(\"b\", bad)", WithLoader(l))
	if !errors.Is(err, ErrLoad) {
		t.Errorf("got %v, want %v", err, ErrLoad)
	}
}

func TestComments(t *testing.T) {
	y, err := ParseString("// lead\nx = 1 /* tail */\n", ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	x := y.Get("x")
	if x.Comment == nil || len(x.Comment.Values) != 1 {
		t.Fatalf("x comments: %v", x.Comment)
	}
	if got := ir.CommentText(x.Comment.Values[0]); got != "// lead" {
		t.Errorf("got %q", got)
	}
	if y.Comment == nil || len(y.Comment.Values) != 1 {
		t.Fatalf("root comments: %v", y.Comment)
	}
	if got := ir.CommentText(y.Comment.Values[0]); got != "/* tail */" {
		t.Errorf("got %q", got)
	}

	y, err = ParseString("// lead\nx = 1", ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if y.Get("x").Comment != nil {
		t.Error("comments kept without ParseComments")
	}
}

func TestPositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	y, err := ParseString("a = 1\nb = [2, 3]", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	p := pos[y.Get("b").At(1)]
	if p == nil {
		t.Fatal("no position")
	}
	if p.Line() != 1 || p.Col() != 8 {
		t.Errorf("got %s, want line 1 col 8", p)
	}
}

func TestMaxDepth(t *testing.T) {
	_, err := ParseString("x = [[[[1]]]]", MaxDepth(3))
	if !errors.Is(err, grammar.ErrTooDeep) {
		t.Errorf("got %v, want %v", err, grammar.ErrTooDeep)
	}
}

func mustFloat(t *testing.T, f float64) *ir.Node {
	t.Helper()
	y, err := ir.FromFloat(f)
	if err != nil {
		t.Fatal(err)
	}
	return y
}
