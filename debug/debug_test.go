package debug

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/arc-format/arc/ir"
)

func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })
	return buf
}

func TestLogAny(t *testing.T) {
	buf := capture(t)
	LogAny(map[string]any{"a": []any{1, "x", nil}})
	LogAny(func() {})
	got := buf.String()
	want := `{"a":[1,"x",null]}` + "\n"
	if len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("got %q", got)
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) != 2 {
		t.Errorf("want one line per value, got %q", got)
	}
}

func TestLogf(t *testing.T) {
	buf := capture(t)
	Logf("%s = %s\n", "k", ir.FromSlice([]*ir.Node{ir.FromUint(1), ir.FromString("s")}))
	if diff := cmp.Diff("k = [1, \"s\"]\n\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
