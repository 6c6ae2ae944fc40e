package eval

import (
	"github.com/signadot/tony-format/hocon"

	"github.com/expr-lang/expr"
)

// Symbol is a function made available to expressions. Function binds it
// to the configuration being evaluated.
type Symbol interface {
	String() string
	Function(cfg *hocon.Config) expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}

// funcSymbol is a Symbol from a plain implementation and its signature,
// given as a pointer to a func type as expr.Function expects.
type funcSymbol struct {
	name
	fn  func(cfg *hocon.Config, params ...any) (any, error)
	sig any
}

func (s funcSymbol) Function(cfg *hocon.Config) expr.Option {
	return expr.Function(s.String(), func(params ...any) (any, error) {
		return s.fn(cfg, params...)
	}, s.sig)
}
