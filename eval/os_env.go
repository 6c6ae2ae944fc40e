package eval

import (
	"os"
	"strings"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/debug"
)

const (
	osenvName name = "osenv"
)

var osenvSym = &funcSymbol{
	name: osenvName,
	fn: func(_ *hocon.Config, params ...any) (any, error) {
		key := strings.TrimSpace(params[0].(string))
		if debug.Resolve() {
			debug.Logf("osenv %s\n", key)
		}
		return os.Getenv(key), nil
	},
	sig: new(func(string) string),
}

func OSEnv() Symbol {
	return osenvSym
}
