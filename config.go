package hocon

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/parse"
	"github.com/signadot/tony-format/hocon/resolve"
)

// Config is a read only view over a configuration tree. A Config obtained
// with GetConfig keeps the configuration it came from as its parent and is
// partial: lookups missing locally are retried on the parent.
type Config struct {
	root     *ir.Node
	parent   *Config
	fallback bool
	keys     atomic.Pointer[[]string]
}

// New builds a configuration from JSON text (string or []byte), a
// map[string]any or an object *ir.Node.
func New(v any) (*Config, error) {
	var (
		n   *ir.Node
		err error
	)
	switch x := v.(type) {
	case string:
		return New([]byte(x))
	case []byte:
		if len(x) == 0 {
			return nil, ErrEmptyContent
		}
		n, err = ir.FromJSON(x)
	case *ir.Node:
		n = x.Clone()
	case map[string]any:
		n, err = ir.FromAny(x)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrBadInput, v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if n == nil || n.Type != ir.ObjectType {
		return nil, ErrBadInput
	}
	return &Config{root: n}, nil
}

// Parse parses HOCON text.
func Parse(d []byte, opts ...parse.ParseOption) (*Config, error) {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Config{root: n}, nil
}

func ParseString(s string, opts ...parse.ParseOption) (*Config, error) {
	return Parse([]byte(s), opts...)
}

func ParseJSON(d []byte) (*Config, error) {
	return New(d)
}

func ParseYAML(d []byte) (*Config, error) {
	if len(d) == 0 {
		return nil, ErrEmptyContent
	}
	n, err := ir.FromYAML(d)
	if err != nil {
		return nil, err
	}
	return New(n)
}

// Root returns the unresolved tree. It must not be modified.
func (c *Config) Root() *ir.Node {
	return c.root
}

// Parent returns the configuration a partial configuration was taken from.
func (c *Config) Parent() *Config {
	return c.parent
}

// Resolve returns a copy of the tree with every reference resolved.
func (c *Config) Resolve() (*ir.Node, error) {
	return resolve.Deep(c.root, c, nil)
}

// Lookup implements resolve.Scope: the local tree first, then the parent.
// The result is resolved in the scope where it was found.
func (c *Config) Lookup(path string, st *resolve.State) (*ir.Node, error) {
	if n := c.root.GetPath(path); n != nil {
		return resolve.Deep(n, c, st)
	}
	if c.parent != nil {
		return c.parent.Lookup(path, st)
	}
	return nil, nil
}

// Exists implements resolve.Scope with HasKey.
func (c *Config) Exists(path string) bool {
	return c.HasKey(path)
}

// GetValue returns the resolved value at a dotted path. Missing and null
// values are both reported as nil.
func (c *Config) GetValue(path string) (*ir.Node, error) {
	if path == "" {
		return nil, nil
	}
	v, err := c.Lookup(path, resolve.NewState())
	if err != nil {
		return nil, err
	}
	if v.IsNull() {
		return nil, nil
	}
	return v, nil
}

// HasKey reports whether path is present, even with a null value, here or
// in the parent.
func (c *Config) HasKey(path string) bool {
	if path == "" {
		return false
	}
	if c.root.GetPath(path) != nil {
		return true
	}
	return c.parent != nil && c.parent.HasKey(path)
}

// Keys returns the keys of the top level object.
func (c *Config) Keys() []string {
	if p := c.keys.Load(); p != nil {
		return *p
	}
	keys := c.root.Keys()
	c.keys.Store(&keys)
	return keys
}

// WithFallback merges other underneath c: values of c win, objects present
// on both sides merge key by key. It modifies and returns c, and may be
// called once on a configuration that is not partial.
func (c *Config) WithFallback(other *Config) (*Config, error) {
	if c.parent != nil {
		return nil, ErrPartialConfig
	}
	if c.fallback {
		return nil, ErrFallbackSet
	}
	if other == nil {
		return nil, fmt.Errorf("%w: nil fallback", ErrBadInput)
	}
	c.root = ir.Merge(other.root, c.root)
	c.fallback = true
	c.keys.Store(nil)
	if debug.Merge() {
		debug.Logf("merged fallback: %v\n", c.root)
	}
	return c, nil
}

// Unresolved reports whether err comes from a reference without a value.
func Unresolved(err error) bool {
	return errors.Is(err, resolve.ErrUnresolved)
}

func (c *Config) String() string {
	return encode.MustString(c.root)
}
