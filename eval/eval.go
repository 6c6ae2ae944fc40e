// Package eval evaluates expressions over a resolved configuration.
//
// Top level keys are variables of the expression environment; keys that
// are not identifiers are reachable through $env["some-key"] or the
// getpath function. See Symbols for the available functions.
package eval

import (
	"fmt"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/ir"

	"github.com/expr-lang/expr"
)

// Env is the expression environment for cfg.
func Env(cfg *hocon.Config) (map[string]any, error) {
	root, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	env, ok := ir.ToAny(root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ir.ErrNotObject, root.Type)
	}
	return env, nil
}

// Eval runs code with the environment of cfg and converts the result back
// to a node.
func Eval(cfg *hocon.Config, code string) (*ir.Node, error) {
	env, err := Env(cfg)
	if err != nil {
		return nil, err
	}
	opts := []expr.Option{expr.Env(env)}
	for _, s := range Symbols() {
		opts = append(opts, s.Function(cfg))
	}
	prg, err := expr.Compile(code, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", code, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", code, err)
	}
	return ir.FromAny(out)
}
