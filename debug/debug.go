package debug

import (
	"github.com/caarlos0/env/v11"
)

type debug struct {
	Parse   bool `env:"HOCON_DEBUG_PARSE"`
	Resolve bool `env:"HOCON_DEBUG_RESOLVE"`
	Load    bool `env:"HOCON_DEBUG_LOAD"`
	Merge   bool `env:"HOCON_DEBUG_MERGE"`
	LSP     bool `env:"HOCON_DEBUG_LSP"`
}

var d *debug

func init() {
	d = &debug{}
	if err := env.Parse(d); err != nil {
		// a malformed switch leaves every switch off
		d = &debug{}
	}
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Load() bool {
	return d.Load
}
func Merge() bool {
	return d.Merge
}
func LSP() bool {
	return d.LSP
}
