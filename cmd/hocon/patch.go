package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/format"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	c, err := cfg.load(cc, args[1:])
	if err != nil {
		return err
	}
	doc, err := c.Resolve()
	if err != nil {
		return fmt.Errorf("error resolving: %w", err)
	}
	var res *ir.Node
	if trimmed := bytes.TrimSpace(d); len(trimmed) != 0 && trimmed[0] == '[' {
		res, err = libdiff.ApplyPatch(doc, trimmed)
	} else {
		var mp []byte
		if mp, err = cfg.mergePatch(cc, args[0]); err == nil {
			res, err = libdiff.ApplyMergePatch(doc, mp)
		}
	}
	if err != nil {
		return fmt.Errorf("error applying %s: %w", args[0], err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

// mergePatch reads a configuration file of any format as a merge patch.
func (cfg *MainConfig) mergePatch(cc *cli.Context, file string) ([]byte, error) {
	n, err := cfg.resolvedFile(cc, file)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeFormat(format.JSONFormat), encode.Compact(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cfg *MainConfig) resolvedFile(cc *cli.Context, file string) (*ir.Node, error) {
	c, err := cfg.loadInput(cc, file)
	if err != nil {
		return nil, err
	}
	return c.Resolve()
}
