package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/format"
	"github.com/signadot/arc-format/arc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Comments bool `cli:"name=c desc='keep comments'"`
	Doc      bool `cli:"name=doc desc='write arc dicts as key = value lines'"`
	Compact  bool `cli:"name=compact desc='write json without indentation'"`
	Lossy    bool `cli:"name=lossy desc='write arc-only values as json strings'"`
	NoLoad   bool `cli:"name=noload desc='do not resolve @include and @import'"`

	A bool `cli:"name=a aliases=arc desc='do i/o in arc'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat is the format selected by -a, -j or -y, if any.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.A:
		return format.ArcFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.ArcFormat, false
}

// inFormat is the format used to read path: -I, then the format flags,
// then the file suffix, then arc.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.ArcFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.flagFormat()
	return f
}

// parseOpts returns the options for parsing arc read from path.  "-" is
// standard input, whose directives resolve against the working directory.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseComments(cfg.Comments),
	}
	if cfg.NoLoad {
		return res
	}
	dir := "."
	active := map[string]bool{}
	if path != "-" {
		dir = filepath.Dir(path)
		if abs, err := filepath.Abs(path); err == nil {
			active[abs] = true
		}
	}
	return append(res, parse.WithLoader(&fileLoader{dir: dir, active: active, comments: cfg.Comments}))
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeComments(cfg.Comments),
		encode.EncodeDocument(cfg.Doc),
		encode.EncodeLossy(cfg.Lossy),
	}
	if cfg.Compact {
		res = append(res, encode.EncodeIndent(0))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Handlers map[string]string
	Strict   bool `cli:"name=strict desc='fail on tags without a handler'"`
	NoCites  bool `cli:"name=nocites desc='leave cites in place'"`
	Tags     bool `cli:"name=tags desc='show available handler tags'"`
	ListOnly bool `cli:"name=cites desc='list cites instead of resolving them'"`

	Eval *cli.Command
}

func handlerOptFunc(handlers map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		tag, code, ok := strings.Cut(a, "=")
		if !ok || tag == "" {
			return nil, fmt.Errorf("%w: argument %q expected tag=expr", cli.ErrUsage, a)
		}
		handlers[tag] = code
		return 0, nil
	}
}

type DiffConfig struct {
	*MainConfig
	Loop      string `cli:"name=loop desc='command to produce documents to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int  `cli:"name=loopLim desc='max number of times to loop'"`
	Apply     bool `cli:"name=apply desc='print the second document rebuilt from the first and the changes'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='patch is a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Resolve bool `cli:"name=r aliases=resolve desc='also resolve cites and handlers'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to source file instead of output'"`

	Fmt *cli.Command
}
