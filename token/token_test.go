package token

import "testing"

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\r",
		"∞∞",
		`"""''`,
		`a\b`,
		`\`,
		`f[0]`,
		"",
	} {
		q := Quote(s)
		if q[0] != '"' || q[len(q)-1] != '"' {
			t.Errorf("Quote(%q) = %s, not delimited", s, q)
			continue
		}
		if uq := Unescape(q[1 : len(q)-1]); uq != s {
			t.Errorf("Unescape(Quote(%q)) = %q", s, uq)
		}
	}
}

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{`abc`, "abc"},
		{`a\nb`, "a\nb"},
		{`\'\"\\`, `'"\`},
		{`\q`, "q"},
		{`\∞x`, "∞x"},
		{`tail\`, `tail\`},
	} {
		if got := Unescape(tc.in); got != tc.out {
			t.Errorf("Unescape(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestQuoteKey(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"abc", "abc"},
		{"_x1", "_x1"},
		{"日本", "日本"},
		{"12", "12"},
		{"012", `"012"`},
		{"a b", `"a b"`},
		{"a.b", `"a.b"`},
		{"", `""`},
		{"-1", `"-1"`},
	} {
		if got := QuoteKey(tc.in); got != tc.out {
			t.Errorf("QuoteKey(%q) = %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\r\nef\rg"))
	for _, tc := range []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{7, 2, 0},
		{10, 3, 0},
		{11, 3, 1},
	} {
		l, c := doc.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", tc.off, l, c, tc.line, tc.col)
		}
		if tc.off < 11 {
			if off := doc.Offset(tc.line, tc.col); off != tc.off {
				t.Errorf("Offset(%d, %d) = %d want %d", tc.line, tc.col, off, tc.off)
			}
		}
	}
	if n := doc.Lines(); n != 4 {
		t.Errorf("Lines() = %d", n)
	}
}

func TestSymbol(t *testing.T) {
	for _, tc := range []struct {
		in string
		ok bool
	}{
		{"a", true},
		{"_", true},
		{"a1", true},
		{"1a", false},
		{"a-b", false},
		{"Ⅻ", true},
		{"", false},
	} {
		if got := IsSymbol(tc.in); got != tc.ok {
			t.Errorf("IsSymbol(%q) = %v", tc.in, got)
		}
	}
}
