package main

import (
	"fmt"
	"io"

	"github.com/signadot/arc-format/arc/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	docs, err := getDocs(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	opts := cfg.encOpts(w)
	for i, y := range docs {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding document %d of %s: %w", i, file, err)
		}
	}
	return nil
}
