package eval

import (
	"fmt"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/ir"
)

const (
	toValueName name = "tovalue"
)

// tovalue(text) parses HOCON text into an object. References inside the
// text resolve against the configuration being evaluated.
var toValueSym = &funcSymbol{
	name: toValueName,
	fn: func(cfg *hocon.Config, params ...any) (any, error) {
		sub, err := hocon.ParseString(params[0].(string))
		if err != nil {
			return nil, fmt.Errorf("tovalue: %w", err)
		}
		if sub, err = sub.WithFallback(cfg); err != nil {
			return nil, err
		}
		v, err := sub.Resolve()
		if err != nil {
			return nil, fmt.Errorf("tovalue: %w", err)
		}
		return ir.ToAny(v), nil
	},
	sig: new(func(string) any),
}

func ToValue() Symbol {
	return toValueSym
}
