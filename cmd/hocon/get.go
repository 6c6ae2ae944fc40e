package main

import (
	"fmt"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	c, err := cfg.load(cc, args[1:])
	if err != nil {
		return err
	}
	v, err := c.GetValue(path)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", path, err)
	}
	if v == nil {
		return fmt.Errorf("no value at %s", path)
	}
	if cfg.Raw && v.Type == ir.StringType {
		_, err := fmt.Fprintln(cc.Out, v.String)
		return err
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
}
