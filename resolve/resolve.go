package resolve

import (
	"regexp"
	"strings"

	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/ir"
)

// Scope looks up dotted key paths. Lookup returns a nil node without error
// when nothing is found; otherwise the returned node is fully resolved.
// Exists reports a path that is present even when it holds no value.
type Scope interface {
	Lookup(path string, st *State) (*ir.Node, error)
	Exists(path string) bool
}

var refPattern = regexp.MustCompile(`\$\{([\w+\-.]+)\}`)

// Split cuts s into literal string segments and the references of the
// `${path}` occurrences it contains.
func Split(s string) []ir.Segment {
	locs := refPattern.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return []ir.Segment{ir.Lit(ir.FromString(s))}
	}
	res := make([]ir.Segment, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			res = append(res, ir.Lit(ir.FromString(s[last:loc[0]])))
		}
		res = append(res, ir.Ref(s[loc[2]:loc[3]]))
		last = loc[1]
	}
	if last < len(s) {
		res = append(res, ir.Lit(ir.FromString(s[last:])))
	}
	return res
}

// Compile resolves segs in scope. A single literal is resolved deeply, a
// single reference yields its target unchanged and several segments are
// concatenated as text.
func Compile(segs []ir.Segment, scope Scope, st *State) (*ir.Node, error) {
	if st == nil {
		st = NewState()
	}
	switch len(segs) {
	case 0:
		return ir.FromString(""), nil
	case 1:
		s := segs[0]
		if !s.IsRef() {
			return Deep(s.Lit, scope, st)
		}
		v, err := Ref(s, scope, st)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return ir.FromString(""), nil
		}
		return v, nil
	}
	return text(segs, scope, st)
}

// text concatenates the scalar text of every segment.
func text(segs []ir.Segment, scope Scope, st *State) (*ir.Node, error) {
	b := &strings.Builder{}
	for _, s := range segs {
		var (
			v   *ir.Node
			err error
		)
		if s.IsRef() {
			v, err = Ref(s, scope, st)
		} else {
			v, err = Deep(s.Lit, scope, st)
		}
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if !v.Type.IsLeaf() || v.Type == ir.PendingType {
			return nil, &ConcatErr{Ref: s.Ref, Type: v.Type}
		}
		b.WriteString(v.Text())
	}
	return ir.FromString(b.String()), nil
}

// Ref resolves a single reference segment. A nil result means the path
// exists without a value and substitutes as nothing.
func Ref(s ir.Segment, scope Scope, st *State) (*ir.Node, error) {
	if s.Cached != nil {
		return s.Cached, nil
	}
	if st == nil {
		st = NewState()
	}
	if err := st.enter(s.Ref); err != nil {
		return nil, err
	}
	defer st.leave()
	v, err := scope.Lookup(s.Ref, st)
	if err != nil {
		return nil, err
	}
	if debug.Resolve() {
		debug.Logf("resolve ${%s} depth %d: %v\n", s.Ref, st.Depth(), v)
	}
	if v == nil || v.IsNull() {
		if v != nil || scope.Exists(s.Ref) {
			return nil, nil
		}
		return nil, &RefErr{Ref: s.Ref}
	}
	return v, nil
}

// Interpolate replaces the `${path}` occurrences of s with the text of
// their targets. The result is always a string, even when s is exactly
// one reference.
func Interpolate(s string, scope Scope, st *State) (*ir.Node, error) {
	if !strings.Contains(s, "${") {
		return ir.FromString(s), nil
	}
	segs := Split(s)
	if len(segs) == 1 && !segs[0].IsRef() {
		return segs[0].Lit, nil
	}
	if st == nil {
		st = NewState()
	}
	return text(segs, scope, st)
}

// Deep returns n with every pending value compiled and every string
// interpolated, recursing into arrays and objects. n is not modified.
func Deep(n *ir.Node, scope Scope, st *State) (*ir.Node, error) {
	if n == nil {
		return nil, nil
	}
	if st == nil {
		st = NewState()
	}
	switch n.Type {
	case ir.PendingType:
		return Compile(n.Segments, scope, st)
	case ir.StringType:
		return Interpolate(n.String, scope, st)
	case ir.ArrayType:
		res := ir.FromSlice(make([]*ir.Node, len(n.Values)))
		for i, v := range n.Values {
			rv, err := Deep(v, scope, st)
			if err != nil {
				return nil, err
			}
			res.Values[i] = rv
		}
		return res, nil
	case ir.ObjectType:
		res := ir.NewObject()
		for i, k := range n.Fields {
			rv, err := Deep(n.Values[i], scope, st)
			if err != nil {
				return nil, err
			}
			res.Set(k, rv)
		}
		return res, nil
	}
	return n, nil
}
