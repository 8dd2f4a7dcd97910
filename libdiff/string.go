package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func editString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	return dmp.DiffCleanupSemantic(diffs)
}

// editText renders edits inline, deletions as [-x-] and insertions as
// {+x+}.
func editText(edits []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, e := range edits {
		switch e.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + e.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + e.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(e.Text)
		}
	}
	return b.String()
}
