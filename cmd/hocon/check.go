package main

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/hocon/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	c, err := cfg.load(cc, args)
	if err == nil {
		_, err = c.Resolve()
	}
	if err == nil {
		if !cfg.Quiet {
			_, err = fmt.Fprintln(cc.Out, "ok")
		}
		return err
	}
	if !cfg.Quiet {
		msg := err.Error()
		fe := &token.FormatErr{}
		if errors.As(err, &fe) && fe.Pos != nil {
			line, col := fe.Pos.LineCol()
			msg = fmt.Sprintf("%s (line %d, col %d)", msg, line+1, col+1)
		}
		fmt.Fprintln(cc.Out, msg)
	}
	return cli.ExitCodeErr(1)
}
