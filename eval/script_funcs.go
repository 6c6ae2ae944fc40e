package eval

import (
	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/ir"
)

const (
	getPathName name = "getpath"
	hasPathName name = "haspath"
	keysName    name = "keys"
)

var getPathSym = &funcSymbol{
	name: getPathName,
	fn: func(cfg *hocon.Config, params ...any) (any, error) {
		v, err := cfg.GetValue(params[0].(string))
		if err != nil {
			return nil, err
		}
		return ir.ToAny(v), nil
	},
	sig: new(func(string) any),
}

// GetPath is getpath(path): the resolved value at a dotted path, or nil.
func GetPath() Symbol {
	return getPathSym
}

var hasPathSym = &funcSymbol{
	name: hasPathName,
	fn: func(cfg *hocon.Config, params ...any) (any, error) {
		return cfg.HasKey(params[0].(string)), nil
	},
	sig: new(func(string) bool),
}

func HasPath() Symbol {
	return hasPathSym
}

var keysSym = &funcSymbol{
	name: keysName,
	fn: func(cfg *hocon.Config, params ...any) (any, error) {
		sub := cfg
		if p := params[0].(string); p != "" {
			var err error
			if sub, err = cfg.GetConfig(p); err != nil || sub == nil {
				return []any{}, err
			}
		}
		keys := sub.Keys()
		res := make([]any, len(keys))
		for i, k := range keys {
			res[i] = k
		}
		return res, nil
	},
	sig: new(func(string) []any),
}

// Keys is keys(path): the keys of the object at path in document order.
// The empty path names the top level object.
func Keys() Symbol {
	return keysSym
}
