package ir

import (
	"errors"
)

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrBadJSON     = errors.New("invalid json")
	ErrBadYAML     = errors.New("invalid yaml")
	ErrNotObject   = errors.New("not an object")
)
