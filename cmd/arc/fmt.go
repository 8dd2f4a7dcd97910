package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/format"
	"github.com/signadot/arc-format/arc/parse"

	"github.com/scott-cotton/cli"
)

// arcFmt rewrites arc files in document form, keeping comments.  Files
// with directives are refused since their statements would be lost.
func arcFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	for _, file := range args {
		out, err := formatFile(cc, file)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
		if cfg.Write {
			if err := os.WriteFile(file, out, 0644); err != nil {
				return err
			}
			continue
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func formatFile(cc *cli.Context, file string) ([]byte, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	for i, doc := range bytes.Split(d, docSep) {
		if i > 0 {
			buf.WriteString("---\n")
		}
		var dirs []parse.Directive
		y, err := parse.Parse(doc, parse.ParseComments(true), parse.ParseDirectives(&dirs))
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if len(dirs) > 0 {
			return nil, fmt.Errorf("document %d: cannot format @%s at %s", i, dirs[0].Kind, dirs[0].Pos)
		}
		err = encode.Encode(y, buf,
			encode.EncodeFormat(format.ArcFormat),
			encode.EncodeComments(true),
			encode.EncodeDocument(true))
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}
