package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := ""
	if len(args) != 0 && args[0] != "-" {
		if _, err := os.Stat(args[0]); err != nil {
			path, args = args[0], args[1:]
		}
	}
	c, err := cfg.load(cc, args)
	if err != nil {
		return err
	}
	if path != "" {
		sub, err := c.GetConfig(path)
		if err != nil {
			return err
		}
		if sub == nil {
			return fmt.Errorf("no object at %s", path)
		}
		c = sub
	}
	ks := c.Keys()
	if cfg.Paths {
		ks = c.Root().Paths()
	}
	for _, k := range ks {
		if _, err := fmt.Fprintln(cc.Out, k); err != nil {
			return err
		}
	}
	return nil
}
