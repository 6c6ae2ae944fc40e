// Package tree accumulates leaf registrations into a configuration tree.
//
// Every value is registered against its full dotted key path. Registering
// under a path walks intermediate objects, replacing any non object met on
// the way, so that re-declaring an object merges new leaves into it while
// a scalar registered on the object's own path discards everything below.
package tree

import (
	"strings"

	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/resolve"
)

// Builder is a document under construction. It is a resolve.Scope over
// its own tree, delegating misses to an optional parent scope.
type Builder struct {
	root   *ir.Node
	base   string
	parent resolve.Scope
}

type Option func(*Builder)

// WithParent sets the scope consulted for paths missing from the builder.
func WithParent(p resolve.Scope) Option {
	return func(b *Builder) { b.parent = p }
}

// WithBaseKey sets a prefix stripped from looked up paths, for a builder
// standing for a nested scope. The prefix normally ends with ".".
func WithBaseKey(k string) Option {
	return func(b *Builder) { b.base = k }
}

func New(opts ...Option) *Builder {
	b := &Builder{root: ir.NewObject()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterValue writes v at path. A nil v registers an empty object. The
// empty path replaces the whole tree when v is an object.
func (b *Builder) RegisterValue(path string, v *ir.Node) {
	if v == nil {
		v = ir.NewObject()
	}
	if debug.Parse() {
		debug.Logf("register %q: %v\n", path, v)
	}
	if path == "" {
		if v.Type == ir.ObjectType {
			b.root = v
		}
		return
	}
	b.root.SetPath(path, v)
}

func (b *Builder) local(path string) string {
	if b.base != "" && strings.HasPrefix(path, b.base) {
		return path[len(b.base):]
	}
	return path
}

// TestKey reports whether path is registered here or in the parent.
func (b *Builder) TestKey(path string) bool {
	if b.root.GetPath(b.local(path)) != nil {
		return true
	}
	return b.parent != nil && b.parent.Exists(path)
}

// GetValue returns the resolved value at path, or nil when neither the
// builder nor its parent has it. Pending values are compiled against the
// builder on the fly.
func (b *Builder) GetValue(path string, st *resolve.State) (*ir.Node, error) {
	n := b.root.GetPath(b.local(path))
	if n != nil {
		return resolve.Deep(n, b, st)
	}
	if b.parent != nil {
		return b.parent.Lookup(path, st)
	}
	return nil, nil
}

// Root returns the tree built so far, pending values included.
func (b *Builder) Root() *ir.Node {
	return b.root
}

func (b *Builder) Lookup(path string, st *resolve.State) (*ir.Node, error) {
	return b.GetValue(path, st)
}

func (b *Builder) Exists(path string) bool {
	return b.TestKey(path)
}
