package main

import (
	"fmt"

	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.resolved(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.resolved(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Patch {
		p, err := libdiff.MergePatch(a, b)
		if err != nil {
			return err
		}
		if libdiff.Equal(a, b) {
			return nil
		}
		if _, err := fmt.Fprintln(cc.Out, string(p)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	cs := libdiff.Diff(a, b)
	if len(cs) == 0 {
		return nil
	}
	colored := cfg.colored(cc.Out)
	for _, c := range cs {
		line := c.Plain()
		if colored {
			line = c.String()
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func (cfg *MainConfig) resolved(cc *cli.Context, in string) (*ir.Node, error) {
	c, err := cfg.load(cc, []string{in})
	if err != nil {
		return nil, err
	}
	n, err := c.Resolve()
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", in, err)
	}
	return n, nil
}
