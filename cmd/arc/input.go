package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/arc-format/arc/bridge"
	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/format"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("---")

// splitDocs splits arc input at lines holding only "---".  Blank sections
// before the first separator and after the last one are dropped.
func splitDocs(d []byte) [][]byte {
	var (
		res   [][]byte
		start int
	)
	off := 0
	for line := range bytes.Lines(d) {
		if bytes.Equal(bytes.TrimRight(line, "\r\n"), docSep) {
			res = append(res, d[start:off])
			start = off + len(line)
		}
		off += len(line)
	}
	res = append(res, d[start:])
	if len(res) > 1 && len(bytes.TrimSpace(res[0])) == 0 {
		res = res[1:]
	}
	if n := len(res); n > 1 && len(bytes.TrimSpace(res[n-1])) == 0 {
		res = res[:n-1]
	}
	return res
}

// readFile reads path, or cc.In for "-".
func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDocs reads the documents in path.  Arc input holds one document per
// "---" separated section; json and yaml input hold one.
func getDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	f := cfg.inFormat(path)
	if !f.IsArc() {
		y, err := decode(d, f, nil)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{y}, nil
	}
	var res []*ir.Node
	for i, doc := range splitDocs(d) {
		y, err := parse.Parse(doc, cfg.parseOpts(path)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, y)
	}
	return res, nil
}

// getObjFile reads the single document in path.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return decode(d, cfg.inFormat(path), cfg.parseOpts(path))
}

func decode(d []byte, f format.Format, opts []parse.ParseOption) (*ir.Node, error) {
	switch f {
	case format.JSONFormat:
		return bridge.DecodeJSON(d)
	case format.YAMLFormat:
		return bridge.DecodeYAML(d)
	}
	return parse.Parse(d, opts...)
}

var errIncludeCycle = errors.New("include cycle")

// fileLoader resolves directives against the filesystem, relative to the
// directory of the including file.  The directive symbol picks the format
// of the loaded file when it names one, and otherwise selects that entry
// of the loaded dict.
type fileLoader struct {
	dir      string
	active   map[string]bool
	comments bool
}

func (l *fileLoader) Load(d parse.Directive) (*ir.Node, error) {
	p := d.Path
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.dir, p)
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return nil, err
	}
	if l.active[p] {
		return nil, fmt.Errorf("%w: %s", errIncludeCycle, p)
	}
	if debug.Load() {
		debug.Logf("%s %s (%s) from %s\n", d.Kind, p, d.Symbol, l.dir)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	f, symErr := format.ParseFormat(d.Symbol)
	if symErr != nil {
		if sf, ok := format.FromPath(p); ok {
			f = sf
		} else {
			f = format.ArcFormat
		}
	}
	active := make(map[string]bool, len(l.active)+1)
	for k := range l.active {
		active[k] = true
	}
	active[p] = true
	sub := &fileLoader{dir: filepath.Dir(p), active: active, comments: l.comments}
	y, err := decode(data, f, []parse.ParseOption{parse.ParseComments(l.comments), parse.WithLoader(sub)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if symErr == nil {
		return y, nil
	}
	v, ok := y.Lookup(d.Symbol)
	if !ok {
		return nil, fmt.Errorf("%s: no entry %q", p, d.Symbol)
	}
	return v, nil
}
