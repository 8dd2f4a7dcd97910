package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		y1, err := getObjFile(cfg.MainConfig, cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		y2, err := getObjFile(cfg.MainConfig, cc, args[1])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, y1, y2, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}

	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	i := 0
	last := ir.Null()
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for {
		if i == cfg.LoopLim {
			break
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		next, err := decode(d, cfg.inFormat("-"), cfg.parseOpts("-"))
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		last = next
		<-ticker.C
		i++
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node, sep bool) (bool, error) {
	changes := libdiff.Diff(a, b)
	w := cc.Out
	if len(changes) == 0 {
		return false, nil
	}
	when := time.Now().Format(time.RFC3339Nano)
	if sep {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		if _, err := w.Write([]byte("// difference found at " + when + "\n")); err != nil {
			return false, err
		}
	}
	if cfg.Apply {
		res, err := libdiff.Apply(a, changes)
		if err != nil {
			return false, fmt.Errorf("error applying diff: %w", err)
		}
		return true, encode.Encode(res, w, cfg.MainConfig.encOpts(w)...)
	}
	if _, err := io.WriteString(w, libdiff.Format(changes)); err != nil {
		return false, err
	}
	return true, nil
}
