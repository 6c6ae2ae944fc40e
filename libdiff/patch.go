package libdiff

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/format"
	"github.com/signadot/tony-format/hocon/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch")

// Apply replays changes produced by Diff on a copy of doc.
func Apply(doc *ir.Node, cs []Change) (*ir.Node, error) {
	res := doc.Clone()
	for _, c := range cs {
		if c.Path == "" {
			if c.To == nil || c.To.Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: cannot replace the root with %v", ErrPatch, c.To)
			}
			res = c.To.Clone()
			continue
		}
		switch c.Kind {
		case Removed:
			segs := ir.SplitPath(c.Path)
			parent := res.GetPath(ir.JoinPath(segs[:len(segs)-1]...))
			if !parent.Delete(segs[len(segs)-1]) {
				return nil, fmt.Errorf("%w: nothing to remove at %s", ErrPatch, c.Path)
			}
		default:
			res.SetPath(c.Path, c.To.Clone())
		}
	}
	return res, nil
}

// MergePatch creates the RFC 7386 merge patch turning from into to.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := toJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := toJSON(to)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

// ApplyMergePatch applies an RFC 7386 merge patch. Keys keep their
// positions; keys added by the patch come last.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out)
}

// ApplyPatch applies an RFC 6902 JSON patch.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(doc, out)
}

func toJSON(n *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeFormat(format.JSONFormat), encode.Compact(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSON(orig *ir.Node, d []byte) (*ir.Node, error) {
	res, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return keepOrder(orig, res), nil
}

// keepOrder rearranges the object keys of n to follow those of orig.
func keepOrder(orig, n *ir.Node) *ir.Node {
	if orig == nil || n == nil || orig.Type != ir.ObjectType || n.Type != ir.ObjectType {
		return n
	}
	res := ir.NewObject()
	for _, k := range orig.Fields {
		if v := n.Get(k); v != nil {
			res.Set(k, keepOrder(orig.Get(k), v))
		}
	}
	for i, k := range n.Fields {
		if orig.Index(k) < 0 {
			res.Set(k, n.Values[i])
		}
	}
	return res
}
