package main

import (
	"fmt"

	"github.com/signadot/arc-format/arc/bridge"
	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch and optionally a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	y, err := getObjFile(cfg.MainConfig, cc, target)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", target, err)
	}
	var res *ir.Node
	if cfg.Merge {
		res, err = bridge.MergePatch(y, p, cfg.bridgeOpts()...)
	} else {
		res, err = bridge.Patch(y, p, cfg.bridgeOpts()...)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func (cfg *MainConfig) bridgeOpts() []bridge.ToOption {
	if cfg.Lossy {
		return []bridge.ToOption{bridge.Lossy()}
	}
	return []bridge.ToOption{bridge.FreeDicts()}
}

// getPatch returns the JSON text of a patch given inline with -s or in a
// file of any supported format.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := readFile(cc, arg)
	if err != nil {
		return nil, err
	}
	f := cfg.inFormat(arg)
	if f.IsJSON() {
		return d, nil
	}
	y, err := decode(d, f, cfg.parseOpts(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", arg, err)
	}
	return bridge.MarshalJSON(y, cfg.bridgeOpts()...)
}
