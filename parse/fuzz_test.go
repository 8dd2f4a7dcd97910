package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/arc-format/arc/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Values
		`x = null`,
		`x = true`,
		`x = 42`,
		`x = -1e10`,
		`x = 2**8`,
		`x = 1.`,
		`x = .5`,
		`x = 0xFF_u8`,
		`x = "hello\n"`,
		`x = 'single'`,
		`x = sql"select"`,
		`x = bare words`,
		`x = $a.b.0`,

		// Containers
		`x = []`,
		`x = [1, [2, [3]]]`,
		`x = {a = 1; b: 2,}`,

		// Headers
		"{a}\nx = 1\n{.b}\ny = 2",
		"[l]\n* k = 1\n& 2 3",
		"{a}\nx=1\n{b}\ny=2\n{a}\nz=3",

		// Directives
		`@include("a.arc", a)`,
		`x = @import("b.arc", b)`,

		// Comments
		"// line\nx = 1",
		"x = 1 /* a /* nested */ comment */",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data, ParseComments(true))
		if err != nil {
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			return
		}
		Parse(buf.Bytes())
	})
}
