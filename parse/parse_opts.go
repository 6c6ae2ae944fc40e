package parse

import (
	"github.com/signadot/tony-format/hocon/token"
)

const defaultDepth = 256

type parseOpts struct {
	depth     int
	trace     bool
	positions map[string]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseDepth bounds the nesting of objects and arrays.
func ParseDepth(n int) ParseOption {
	return func(o *parseOpts) { o.depth = n }
}

// ParseTrace logs grammar rules to stderr, as HOCON_DEBUG_PARSE does.
func ParseTrace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}

// ParsePositions records the position of every registered key path.
func ParsePositions(m map[string]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[string]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
