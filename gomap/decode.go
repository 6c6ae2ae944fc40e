// Package gomap decodes configuration trees into Go values.
//
// Values are mapped the way encoding/json maps them: struct fields match
// keys by their `json` tag or, case insensitively, by name.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/format"
	"github.com/signadot/tony-format/hocon/ir"
)

type fromOpts struct {
	strict bool
}

type FromOption func(*fromOpts)

// Strict rejects keys without a matching struct field.
func Strict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// IRFromer is implemented by types decoding themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// FromIR stores the value of a resolved node in p, which must be a
// non nil pointer.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	if node != nil && node.Type == ir.PendingType {
		return fmt.Errorf("%w: unresolved value %s", ir.ErrUnsupported, node.Text())
	}
	b := bytes.NewBuffer(nil)
	if err := encode.Encode(node, b, encode.EncodeFormat(format.JSONFormat), encode.Compact(true)); err != nil {
		return err
	}
	dec := json.NewDecoder(b)
	if do.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(p)
}
