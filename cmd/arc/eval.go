package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/eval"

	"github.com/scott-cotton/cli"
)

func arcEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	reg := eval.DefaultRegistry()
	tags := make([]string, 0, len(cfg.Handlers))
	for tag := range cfg.Handlers {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		if err := reg.RegisterExpr(tag, cfg.Handlers[tag]); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.Tags {
		fmt.Fprintf(cc.Out, "available handler tags:\n")
		for _, h := range reg.Handlers() {
			fmt.Fprintf(cc.Out, "\t- %s\n", h)
		}
		return nil
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := evalFile(cfg, cc, cc.Out, file, reg); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func (cfg *EvalConfig) evalOpts(reg *eval.Registry) []eval.Option {
	res := []eval.Option{eval.WithRegistry(reg)}
	if cfg.Strict {
		res = append(res, eval.Strict())
	}
	if cfg.NoCites {
		res = append(res, eval.NoCites())
	}
	return res
}

func evalFile(cfg *EvalConfig, cc *cli.Context, w io.Writer, file string, reg *eval.Registry) error {
	docs, err := getDocs(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	for i, y := range docs {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if cfg.ListOnly {
			for _, c := range eval.Cites(y) {
				fmt.Fprintln(w, c)
			}
			continue
		}
		y, err = eval.Resolve(y, cfg.evalOpts(reg)...)
		if err != nil {
			return fmt.Errorf("error evaluating document %d of %s: %w", i, file, err)
		}
		if err := encode.Encode(y, w, cfg.MainConfig.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
