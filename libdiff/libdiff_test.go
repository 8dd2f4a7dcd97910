package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseData([]byte(s))
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return y
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{
			name: "equal",
			from: `{a: [1, "x"]}`,
			to:   `{a: [1, "x"]}`,
			want: "",
		},
		{
			name: "dict",
			from: `{a: 1, b: "abc", c: [1, 2, 3]}`,
			to:   `{a: 2, b: "abXc", c: [1, 2], d: true}`,
			want: "~ a: 1 => 2\n" +
				"~ b: \"ab{+X+}c\"\n" +
				"- c.2: 3\n" +
				"+ d: true\n",
		},
		{
			name: "removed key",
			from: `{a: 1, b: 2}`,
			to:   `{b: 2}`,
			want: "- a: 1\n",
		},
		{
			name: "type change",
			from: `{a: [1]}`,
			to:   `{a: {x: 1}}`,
			want: "~ a: [1] => {x:1}\n",
		},
		{
			name: "root",
			from: `1`,
			to:   `"x"`,
			want: "~ <root>: 1 => \"x\"\n",
		},
		{
			name: "list growth",
			from: `[1]`,
			to:   `[1, 2, 3]`,
			want: "+ 1: 2\n+ 2: 3\n",
		},
		{
			name: "list shrink",
			from: `[1, 2, 3]`,
			to:   `[1]`,
			want: "- 2: 3\n- 1: 2\n",
		},
		{
			name: "handler tag",
			from: `{d: km"3"}`,
			to:   `{d: mi"3"}`,
			want: "~ d: km\"3\" => mi\"3\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Diff(mustParse(t, tt.from), mustParse(t, tt.to)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{`{a: 1, b: "abc", c: [1, 2, 3]}`, `{a: 2, b: "abXc", c: [1, 2], d: true}`},
		{`{a: 1, b: 2}`, `{b: 2}`},
		{`[1, 2, 3]`, `[1]`},
		{`[1]`, `[1, {x: [2]}, 3]`},
		{`{s: "line one\nline two\n"}`, `{s: "line one\nline 2\nline three\n"}`},
		{`{a: {b: {c: null}}}`, `{a: {b: {c: false}}}`},
		{`1`, `{a: 1}`},
	}
	for _, tt := range tests {
		from, to := mustParse(t, tt.from), mustParse(t, tt.to)
		got, err := Apply(from, Diff(from, to))
		if err != nil {
			t.Errorf("%s -> %s: %v", tt.from, tt.to, err)
			continue
		}
		if !ir.Equal(to, got) {
			t.Errorf("%s -> %s: got %s", tt.from, tt.to, ir.Display(got))
		}
		if !ir.Equal(mustParse(t, tt.from), from) {
			t.Errorf("%s: Apply modified its input", tt.from)
		}
	}
}

func TestApplyParentLinks(t *testing.T) {
	from := mustParse(t, `{a: [1, 2], b: 3}`)
	to := mustParse(t, `{b: 3, a: [0, 2, 4]}`)
	got, err := Apply(from, Diff(from, to))
	if err != nil {
		t.Fatal(err)
	}
	y, ok := got.GetPath(ir.KeyPath{ir.Key("a"), ir.Index(2)})
	if !ok {
		t.Fatalf("no a.2 in %s", ir.Display(got))
	}
	if diff := cmp.Diff("a.2", y.KeyPath().String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyConflict(t *testing.T) {
	tests := []struct {
		from, to, doc string
	}{
		{`{a: 1}`, `{a: 2}`, `{a: 3}`},
		{`{a: 1}`, `{}`, `{b: 1}`},
		{`{}`, `{a: 1}`, `{a: 2}`},
		{`{s: "abc"}`, `{s: "abd"}`, `{s: "xyz"}`},
		{`[1, 2]`, `[1]`, `[1]`},
		{`{a: {b: 1}}`, `{a: {b: 2}}`, `{a: [1]}`},
	}
	for _, tt := range tests {
		changes := Diff(mustParse(t, tt.from), mustParse(t, tt.to))
		_, err := Apply(mustParse(t, tt.doc), changes)
		if !errors.Is(err, ErrConflict) {
			t.Errorf("%s -> %s on %s: got %v, want %v", tt.from, tt.to, tt.doc, err, ErrConflict)
		}
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Add: "add", Remove: "remove", Replace: "replace", Edit: "edit", Op(9): "Op(9)"} {
		if got := op.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
