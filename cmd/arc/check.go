package main

import (
	"fmt"
	"os"

	"github.com/signadot/arc-format/arc/eval"

	"github.com/scott-cotton/cli"
)

// check reports every failing file on standard error and exits 1 if any failed.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		if err := checkFile(cfg, cc, file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) error {
	docs, err := getDocs(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if !cfg.Resolve {
		return nil
	}
	for i, y := range docs {
		if _, err := eval.Resolve(y, eval.Strict()); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}
