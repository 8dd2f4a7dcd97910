package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("%s parsed as %s", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want %v", err, ErrBadFormat)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"conf.arc", ArcFormat, true},
		{"data/x.JSON", JSONFormat, true},
		{"x.yml", YAMLFormat, true},
		{"Makefile", ArcFormat, false},
		{"x.txt", ArcFormat, false},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: got %s %t, want %s %t", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() || f.Suffix() != ".yaml" {
		t.Errorf("got %s", f)
	}
}
