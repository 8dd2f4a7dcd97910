package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"

	"go.lsp.dev/protocol"
)

const testURI = "file:///test.arc"

func pos(line, char uint32) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		severity []protocol.DiagnosticSeverity
		start    []protocol.Position
		contains string
	}{
		{
			name:    "clean",
			content: "a = {b: 1}\nc = $a\nd = $c.b\n",
		},
		{
			name:     "syntax",
			content:  "a = 1\nb = {",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityError},
			contains: "syntax error",
		},
		{
			name:     "literal",
			content:  "a = 1\nb = 0x10000000000000000\n",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityError},
			start:    []protocol.Position{pos(1, 4)},
			contains: "out of range",
		},
		{
			name:     "unresolved cite",
			content:  "{server}\nport = 1\n{client}\nport = $sever.port\n",
			severity: []protocol.DiagnosticSeverity{protocol.DiagnosticSeverityWarning},
			start:    []protocol.Position{pos(3, 7)},
			contains: "did you mean $server.port?",
		},
		{
			name:    "cite cycle",
			content: "a = $b\nb = $a\n",
			severity: []protocol.DiagnosticSeverity{
				protocol.DiagnosticSeverityWarning,
				protocol.DiagnosticSeverityWarning,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validateDocument(newDocument(testURI, tt.content, 1, nil))
			var sev []protocol.DiagnosticSeverity
			for _, d := range diags {
				sev = append(sev, d.Severity)
			}
			if diff := cmp.Diff(tt.severity, sev); diff != "" {
				t.Fatalf("severities (-want +got):\n%s", diff)
			}
			for i, p := range tt.start {
				if diff := cmp.Diff(p, diags[i].Range.Start); diff != "" {
					t.Errorf("start (-want +got):\n%s", diff)
				}
			}
			if tt.contains != "" && !strings.Contains(diags[0].Message, tt.contains) {
				t.Errorf("message %q does not contain %q", diags[0].Message, tt.contains)
			}
		})
	}
}

func TestPositionOffset(t *testing.T) {
	doc := newDocument(testURI, "é = 1\n😀 = 2\n", 1, nil)
	tests := []struct {
		off int
		p   protocol.Position
	}{
		{0, pos(0, 0)},
		{2, pos(0, 1)},
		{7, pos(1, 0)},
		{11, pos(1, 2)},
		{12, pos(1, 3)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.p, doc.position(tt.off)); diff != "" {
			t.Errorf("position(%d) (-want +got):\n%s", tt.off, diff)
		}
		if got := doc.offset(tt.p); got != tt.off {
			t.Errorf("offset(%v) = %d, want %d", tt.p, got, tt.off)
		}
	}
}

func TestHover(t *testing.T) {
	doc := newDocument(testURI, "// the port\nport = 8080km\nref = $port\n", 1, nil)
	got := doc.hover(pos(1, 0))
	for _, want := range []string{"**HandlerNumber** `port`", "**Tag:** `km`", "the port", "8080km"} {
		if !strings.Contains(got, want) {
			t.Errorf("hover %q does not contain %q", got, want)
		}
	}
	got = doc.hover(pos(2, 8))
	if !strings.Contains(got, "**Refers to:**") {
		t.Errorf("hover on cite: %q", got)
	}
}

func TestDefinition(t *testing.T) {
	doc := newDocument(testURI, "{server}\nport = 8080\n{client}\ntarget = $server.port\n", 1, nil)
	got, ok := doc.definition(pos(3, 10))
	if !ok {
		t.Fatal("no definition")
	}
	if diff := cmp.Diff(pos(1, 7), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := doc.definition(pos(1, 8)); ok {
		t.Error("definition for a number")
	}
}

func labels(items []protocol.CompletionItem) []string {
	var res []string
	for _, it := range items {
		res = append(res, it.Label)
	}
	return res
}

func TestCompletion(t *testing.T) {
	prev := newDocument(testURI, "server = {port: 1, host: \"h\"}\nlist = [1, 2]\n", 1, nil)
	tests := []struct {
		line string
		want []string
	}{
		{"x = $server.", []string{"port", "host"}},
		{"x = $server.h", []string{"host"}},
		{"x = $se", []string{"server"}},
		{"x = $list.", []string{"0", "1"}},
		{"x = 3u", []string{"u16", "u32", "u64", "u8"}},
		{"x = t", []string{"true", "false", "null"}},
		{"@", []string{"@include", "@import"}},
	}
	for _, tt := range tests {
		content := prev.content + tt.line
		doc := newDocument(testURI, content, 2, prev)
		got := labels(doc.complete(pos(2, uint32(len(tt.line)))))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	doc := newDocument(testURI, "a = 1 // c\nb = $a\n", 1, nil)
	var types []uint32
	for _, tk := range doc.collectTokens() {
		types = append(types, tk.tokenType)
	}
	want := []uint32{tokProperty, tokOperator, tokNumber, tokComment, tokProperty, tokOperator, tokVariable}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}

	doc = newDocument(testURI, "a = 1", 1, nil)
	got := doc.encodeTokens(doc.collectTokens())
	wantData := []uint32{
		0, 0, 1, tokProperty, modDefinition,
		0, 2, 1, tokOperator, 0,
		0, 2, 1, tokNumber, 0,
	}
	if diff := cmp.Diff(wantData, got); diff != "" {
		t.Errorf("data (-want +got):\n%s", diff)
	}

	doc = newDocument(testURI, "/* one\ntwo */ a = 1", 1, nil)
	got = doc.encodeTokens(doc.collectTokens())
	if diff := cmp.Diff([]uint32{0, 0, 6, tokComment, 0, 1, 0, 6, tokComment, 0}, got[:10]); diff != "" {
		t.Errorf("multi-line comment (-want +got):\n%s", diff)
	}
}

func TestFormatting(t *testing.T) {
	doc := newDocument(testURI, "b = 2\n// note\na = {x: 1,   y: [1,2]}\n", 1, nil)
	out, ok := doc.formatted()
	if !ok {
		t.Fatal("not formatted")
	}
	y, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("%s: %v", out, err)
	}
	if !ir.Equal(doc.node, y) {
		t.Errorf("formatting changed the value:\n%s", out)
	}
	if !strings.Contains(out, "// note\na = ") {
		t.Errorf("comment lost:\n%s", out)
	}
	doc = newDocument(testURI, "@include(\"x.arc\", arc)\na = 1\n", 1, nil)
	if _, ok := doc.formatted(); ok {
		t.Error("formatted a document with directives")
	}
}

func TestFoldingRanges(t *testing.T) {
	doc := newDocument(testURI, "{a}\nx = 1\ny = [\n  1,\n  2,\n]\n", 1, nil)
	got := doc.foldingRanges()
	found := false
	for _, r := range got {
		if r.StartLine == 2 && r.EndLine == 5 {
			found = true
		}
	}
	if !found {
		t.Errorf("no fold for the list in %+v", got)
	}
}

func TestDocumentSymbols(t *testing.T) {
	doc := newDocument(testURI, "{server}\nport = 1\nhosts = [\"a\"]\n", 1, nil)
	syms := doc.symbols(doc.node)
	if len(syms) != 1 || syms[0].Name != "server" || syms[0].Kind != protocol.SymbolKindObject {
		t.Fatalf("got %+v", syms)
	}
	var names []string
	for _, c := range syms[0].Children {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"port", "hosts"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := syms[0].Children[1].Children[0].Name; got != "0" {
		t.Errorf("list element named %q", got)
	}
}
