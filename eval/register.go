package eval

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var ErrSymbolExists = errors.New("symbol exists")

type registry struct {
	mu   sync.RWMutex
	syms map[string]Symbol
}

var symbols = &registry{syms: map[string]Symbol{}}

func init() {
	for _, s := range []Symbol{GetPath(), HasPath(), Keys(), OSEnv(), ToValue()} {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

// Register makes s available to every later Eval.
func Register(s Symbol) error {
	symbols.mu.Lock()
	defer symbols.mu.Unlock()
	name := s.String()
	if _, ok := symbols.syms[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrSymbolExists)
	}
	symbols.syms[name] = s
	return nil
}

func Lookup(name string) Symbol {
	symbols.mu.RLock()
	defer symbols.mu.RUnlock()
	return symbols.syms[name]
}

// Symbols returns the registered symbols sorted by name.
func Symbols() []Symbol {
	symbols.mu.RLock()
	defer symbols.mu.RUnlock()
	res := make([]Symbol, 0, len(symbols.syms))
	for _, s := range symbols.syms {
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Symbol) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
