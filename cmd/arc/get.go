package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/eval"
	"github.com/signadot/arc-format/arc/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path, err := parse.ParseKeyPath(strings.TrimPrefix(args[0], "$"))
	if err != nil {
		return fmt.Errorf("%w: invalid key path %q: %w", cli.ErrUsage, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range files {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for _, doc := range docs {
			y, ok := doc.GetPath(path)
			if !ok {
				msg := fmt.Sprintf("%s: no value at %s", file, path.Quoted())
				if s := eval.Suggest(doc, path); s != "" {
					msg += fmt.Sprintf(" (did you mean %s?)", s)
				}
				return errors.New(msg)
			}
			if err := encode.Encode(y, cc.Out, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}
