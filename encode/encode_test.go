package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/arc-format/arc/bridge"
	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/format"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"
)

const doc = `// the name
name = alice
{server}
port = 8080
tags = [a, "b c"]
`

func TestEncodeArcRoundTrip(t *testing.T) {
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(node)
	back, err := parse.ParseString(out)
	if err != nil {
		t.Fatalf("%s: %v", out, err)
	}
	if diff := cmp.Diff(ir.Display(node), ir.Display(back)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeDocument(t *testing.T) {
	node, err := parse.ParseString(doc, parse.ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, encode.EncodeDocument(true), encode.EncodeComments(true)); err != nil {
		t.Fatal(err)
	}
	want := "// the name\nname = \"alice\"\nserver = {\n    port: 8080,\n    tags: [\"a\", \"b c\"],\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := parse.Parse(buf.Bytes(), parse.ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node.Get("server"), back.Get("server")) {
		t.Errorf("got %s", ir.Display(back))
	}
}

func TestEncodeJSON(t *testing.T) {
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(node, encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(0))
	want := `{"name":"alice","server":{"port":8080,"tags":["a","b c"]}}`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(node, encode.EncodeFormat(format.YAMLFormat))
	back, err := bridge.DecodeYAML([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.Display(node), ir.Display(back)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	node, err := parse.ParseString("x = $y")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = encode.Encode(node, &buf, encode.EncodeFormat(format.JSONFormat))
	if !errors.Is(err, bridge.ErrUnrepresentable) {
		t.Fatalf("got %v, want %v", err, bridge.ErrUnrepresentable)
	}
	buf.Reset()
	if err := encode.Encode(node, &buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeLossy(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"$y"`) {
		t.Errorf("got %s", buf.String())
	}
}

func TestEncodeColors(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromUint(1)}})
	c := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: encode.ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	if got := encode.MustString(node, encode.EncodeColors(c)); got != "{k:<1>}" {
		t.Errorf("got %q", got)
	}
	if encode.NewColors().Get(ir.StringType, encode.ValueColor) == nil {
		t.Error("no string color")
	}
}
