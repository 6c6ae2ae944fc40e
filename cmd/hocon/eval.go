package main

import (
	"fmt"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/eval"

	"github.com/scott-cotton/cli"
)

func hoconEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Funcs {
		for _, s := range eval.Symbols() {
			if _, err := fmt.Fprintln(cc.Out, s.String()); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	c, err := cfg.load(cc, args[1:])
	if err != nil {
		return err
	}
	res, err := eval.Eval(c, args[0])
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
