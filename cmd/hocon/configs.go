package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/format"
	"github.com/signadot/tony-format/hocon/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='output on one line'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	InFormat, OutFormat *format.Format

	// Env collects -e path=value overrides, layered over every input.
	Env *ir.Node

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

func (cfg *MainConfig) envOpt(_ *cli.Context, a string) (any, error) {
	if err := envFunc(cfg.Env, a); err != nil {
		return nil, err
	}
	return 0, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.HOCONFormat
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Compact(cfg.Compact),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored is -color when given, otherwise whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=r aliases=raw desc='print strings without quotes'"`

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Paths bool `cli:"name=a aliases=all desc='list every dotted path instead of the top level keys'"`

	Keys *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Unresolved bool `cli:"name=u desc='show references instead of resolving them'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch   bool `cli:"name=patch desc='print a json merge patch instead of the changes'"`
	Reverse bool `cli:"name=reverse desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Funcs bool `cli:"name=funcs desc='list available functions'"`

	Eval *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}
