package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-format/hocon/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// envFunc records a path=value override. The value is decoded as YAML so
// that numbers, booleans and flow collections keep their type.
func envFunc(env *ir.Node, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	n, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	env.SetPath(key, n)
	return nil
}
