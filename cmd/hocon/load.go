package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/dirbuild"
	"github.com/signadot/tony-format/hocon/format"

	"github.com/scott-cotton/cli"
)

// load layers inputs in order, then $HOCON_OVERRIDES, then -e overrides.
func (cfg *MainConfig) load(cc *cli.Context, inputs []string) (*hocon.Config, error) {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	var acc *hocon.Config
	for _, in := range inputs {
		next, err := cfg.loadInput(cc, in)
		if err != nil {
			return nil, err
		}
		if acc, err = layer(acc, next); err != nil {
			return nil, err
		}
	}
	envCfg, err := dirbuild.LoadEnv()
	if err != nil {
		return nil, err
	}
	if acc, err = layer(acc, envCfg); err != nil {
		return nil, err
	}
	if len(cfg.Env.Fields) != 0 {
		over, err := hocon.New(cfg.Env)
		if err != nil {
			return nil, err
		}
		if acc, err = layer(acc, over); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// layer puts next over acc. next is copied first since a configuration
// built from a directory already has a fallback.
func layer(acc, next *hocon.Config) (*hocon.Config, error) {
	if next == nil {
		return acc, nil
	}
	if acc == nil {
		return next, nil
	}
	top, err := hocon.New(next.Root())
	if err != nil {
		return nil, err
	}
	return top.WithFallback(acc)
}

func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return def
}

func (cfg *MainConfig) loadInput(cc *cli.Context, in string) (*hocon.Config, error) {
	if in == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		c, err := dirbuild.Decode(d, cfg.inFormat(format.HOCONFormat))
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return c, nil
	}
	st, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		c, err := dirbuild.LoadDir(in)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("no configuration files in %s", in)
		}
		return c, nil
	}
	f, ok := format.FromPath(in)
	if !ok || cfg.InFormat != nil {
		f = cfg.inFormat(format.HOCONFormat)
	}
	return dirbuild.LoadAs(in, f)
}
