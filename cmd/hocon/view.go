package main

import (
	"fmt"

	"github.com/signadot/tony-format/hocon/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := cfg.load(cc, args)
	if err != nil {
		return err
	}
	if cfg.Unresolved {
		return encode.Encode(c.Root(), cc.Out, cfg.encOpts(cc.Out)...)
	}
	root, err := c.Resolve()
	if err != nil {
		return fmt.Errorf("error resolving: %w", err)
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}
