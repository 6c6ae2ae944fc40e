package dirbuild

import (
	"fmt"
	"os"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/debug"
)

const (
	EnvEnv = "HOCON_OVERRIDES"
)

// LoadEnv parses HOCON text held in $HOCON_OVERRIDES. It returns nil when
// the variable is unset.
func LoadEnv() (*hocon.Config, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	cfg, err := hocon.ParseString(envEnv)
	if err != nil {
		return nil, fmt.Errorf("error decoding $%s: %w", EnvEnv, err)
	}
	if debug.Load() {
		debug.Logf("loaded overrides from env: %v\n", cfg.Root())
	}
	return cfg, nil
}
