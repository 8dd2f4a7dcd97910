package ir

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustFloat(t *testing.T, f float64) *Node {
	t.Helper()
	n, err := FromFloat(f)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNegativeIndexing(t *testing.T) {
	list := FromSlice([]*Node{FromInt(10), FromInt(20), FromInt(30)})
	n := len(list.Values)
	if !Equal(list.At(-1), list.At(n-1)) {
		t.Errorf("At(-1) = %v, At(n-1) = %v", list.At(-1), list.At(n-1))
	}
	if !Equal(list.At(-n), list.At(0)) {
		t.Errorf("At(-n) = %v", list.At(-n))
	}
	for _, i := range []int{-(n + 1), n, 100, math.MinInt} {
		if got := list.At(i); got.Type != NullType {
			t.Errorf("At(%d) = %v, want null", i, got)
		}
		if _, ok := list.LookupIndex(i); ok {
			t.Errorf("LookupIndex(%d) succeeded", i)
		}
	}
}

func TestTotalAccessors(t *testing.T) {
	d := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}})
	if got := d.Get("missing"); got.Type != NullType {
		t.Errorf("Get(missing) = %v", got)
	}
	if got := FromInt(3).Get("a"); got.Type != NullType {
		t.Errorf("Get on number = %v", got)
	}
	if got := d.At(0); got.Type != NullType {
		t.Errorf("At on dict = %v", got)
	}
	var nilNode *Node
	if got := nilNode.At(0); got.Type != NullType {
		t.Errorf("At on nil = %v", got)
	}
	// an explicit null is distinguishable from a miss only with Lookup
	d.Set("n", Null())
	if _, ok := d.Lookup("n"); !ok {
		t.Errorf("Lookup(n) missed")
	}
	if _, ok := d.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) hit")
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", FromInt(1))
	d.Set("a", FromInt(2))
	d.Set("c", FromInt(3))
	if diff := cmp.Diff([]string{"b", "a", "c"}, d.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	want := "{\n    b: 1,\n    a: 2,\n    c: 3,\n}"
	if got := Display(d); got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}
	d.Set("a", FromString("x"))
	if diff := cmp.Diff([]string{"b", "a", "c"}, d.Fields); diff != "" {
		t.Errorf("overwrite moved key (-want +got):\n%s", diff)
	}
	if !d.Get("a").EqualString("x") {
		t.Errorf("overwrite lost: %v", d.Get("a"))
	}
	if d.Values[1].ParentIndex != 1 || d.Values[1].ParentField != "a" {
		t.Errorf("parent links not maintained")
	}
}

func TestDisplay(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *Node
		want string
	}{
		{"null", Null(), "null"},
		{"true", FromBool(true), "true"},
		{"uint", FromInt(42), "42"},
		{"neg", FromInt(-7), "-7"},
		{"float", mustFloat(t, 1.5), "1.5"},
		{"whole float", mustFloat(t, 2), "2.0"},
		{"big float", mustFloat(t, 1e21), "1000000000000000000000.0"},
		{"string", FromString("a \"b\"\n"), `"a \"b\"\n"`},
		{"cite", FromCite(KeyPath{Key("a"), Key("b"), Index(3)}), "$a.b.3"},
		{"quoted cite", FromCite(KeyPath{Key("a b")}), `$"a b"`},
		{"list", FromSlice([]*Node{FromInt(1), FromString("s")}), `[1, "s"]`},
		{"empty list", NewList(), "[]"},
		{"empty dict", NewDict(), "{}"},
		{"one dict", FromKeyVals([]KeyVal{{Key: "k", Val: FromInt(1)}}), "{k:1}"},
		{"quoted key", FromKeyVals([]KeyVal{{Key: "a b", Val: Null()}}), `{"a b":null}`},
		{"nested", FromKeyVals([]KeyVal{
			{Key: "x", Val: FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}})},
			{Key: "y", Val: NewList()},
		}), "{\n    x: {\n        a: 1,\n        b: 2,\n    },\n    y: [],\n}"},
		{"handler string", FromHandlerString("px", "3"), `px"3"`},
		{"handler number", FromHandlerNumber("u8", FromInt(255)), "255u8"},
		{"import", FromRecord("import", FromKeyVals([]KeyVal{
			{Key: "path", Val: FromString("lib.arc")},
			{Key: "symbol", Val: FromString("lib")},
		})), `@import("lib.arc", lib)`},
		{"char", FromChar('c'), "'c'"},
		{"comment", FromComment(LineComment, " hi"), "// hi"},
		{"block comment", FromComment(BlockComment, " hi "), "/* hi */"},
		{"empty line", EmptyLine(), ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Display(tc.node); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestFormatter(t *testing.T) {
	n := FromSlice([]*Node{FromBool(false)})
	if got := fmt.Sprintf("%v", n); got != "[false]" {
		t.Errorf("%%v = %q", got)
	}
}

func TestFromFloatRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat(f); err == nil {
			t.Errorf("FromFloat(%v) accepted", f)
		}
	}
}

func TestNumberKinds(t *testing.T) {
	if n := FromInt(5); n.Uint64 == nil || n.Int64 != nil {
		t.Errorf("FromInt(5) not unsigned")
	}
	if n := FromInt(-5); n.Int64 == nil || n.Uint64 != nil {
		t.Errorf("FromInt(-5) not signed")
	}
	if Equal(FromInt(1), mustFloat(t, 1)) {
		t.Errorf("1 == 1.0")
	}
	big := FromUint(math.MaxUint64)
	if _, ok := big.Int(); ok {
		t.Errorf("MaxUint64 fits int64")
	}
}

func TestEqualityConvenience(t *testing.T) {
	if !FromBool(true).EqualBool(true) || FromBool(true).EqualBool(false) {
		t.Errorf("EqualBool on bool")
	}
	if FromString("true").EqualBool(true) {
		t.Errorf("string equals bool")
	}
	if !FromString("s").EqualString("s") {
		t.Errorf("EqualString on string")
	}
	if FromHandlerString("t", "s").EqualString("s") {
		t.Errorf("handler string equals string")
	}
	if FromInt(1).EqualString("1") {
		t.Errorf("number equals string")
	}
}

func TestGetPath(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "b", Val: FromSlice([]*Node{FromInt(0), FromInt(1), FromInt(2), FromInt(3)})},
			{Key: "7", Val: FromString("seven")},
		})},
	})
	v, ok := doc.GetPath(KeyPath{Key("a"), Key("b"), Index(3)})
	if !ok || !Equal(v, FromInt(3)) {
		t.Errorf("a.b.3 = %v, %v", v, ok)
	}
	v, ok = doc.GetPath(KeyPath{Key("a"), Index(7)})
	if !ok || !v.EqualString("seven") {
		t.Errorf("index on dict = %v, %v", v, ok)
	}
	if _, ok := doc.GetPath(KeyPath{Key("a"), Key("b"), Index(-5)}); ok {
		t.Errorf("out of range path resolved")
	}
	got := doc.Get("a").Get("b").At(2).KeyPath()
	if !got.Equal(KeyPath{Key("a"), Key("b"), Index(2)}) {
		t.Errorf("KeyPath() = %s", got)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{{Key: "l", Val: FromSlice([]*Node{FromInt(1)})}})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	c.Get("l").Append(FromInt(2))
	if Equal(orig, c) {
		t.Errorf("clone shares storage")
	}
	if c.Get("l").Parent != c {
		t.Errorf("clone parent link")
	}
}

func TestKeyPathString(t *testing.T) {
	p := KeyPath{Key("a"), Key("b c"), Index(-1)}
	if got := p.String(); got != "a.b c.-1" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Quoted(); got != `a."b c".-1` {
		t.Errorf("Quoted() = %q", got)
	}
	if got := p.Parent().String(); got != "a.b c" {
		t.Errorf("Parent() = %q", got)
	}
	q := p.Parent().Append(Key("z"))
	if p[2] != Index(-1) {
		t.Errorf("Append modified receiver: %s %s", p, q)
	}
}
