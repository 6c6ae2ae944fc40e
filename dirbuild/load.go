package dirbuild

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/format"
)

// Load reads a file in the format named by its extension. Files with an
// unknown extension and missing files load as nil without error.
func Load(path string) (*hocon.Config, error) {
	f, ok := format.FromPath(path)
	if !ok {
		return nil, nil
	}
	return LoadAs(path, f)
}

// LoadAs reads a file in format f regardless of its extension.
func LoadAs(path string, f format.Format) (*hocon.Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if debug.Load() {
		debug.Logf("load %s as %s\n", path, f)
	}
	cfg, err := Decode(d, f)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode builds a configuration from text in format f.
func Decode(d []byte, f format.Format) (*hocon.Config, error) {
	switch f {
	case format.JSONFormat:
		return hocon.ParseJSON(d)
	case format.YAMLFormat:
		return hocon.ParseYAML(d)
	default:
		return hocon.Parse(d)
	}
}
