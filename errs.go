package hocon

import (
	"errors"

	"github.com/signadot/tony-format/hocon/parse"
)

var (
	ErrEmptyContent  = parse.ErrEmpty
	ErrPartialConfig = errors.New("partial configuration cannot register a fallback")
	ErrFallbackSet   = errors.New("fallback already registered")
	ErrBadInput      = errors.New("configuration must be an object, json text or map")
)
