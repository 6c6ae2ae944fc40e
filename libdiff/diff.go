// Package libdiff compares configuration trees and applies patches to
// them.
package libdiff

import (
	"github.com/signadot/tony-format/hocon/ir"
)

// Diff lists the changes turning from into to. Objects are compared key
// by key, in the key order of from followed by keys new in to. Arrays are
// values: a changed array is one change whose Text details the elements.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff("", from, to, &res)
	return res
}

func diff(path string, from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil || to == nil:
		*res = append(*res, MakeChange(path, from, to))
		return
	}
	if from.Type == ir.ObjectType && to.Type == ir.ObjectType {
		for i, k := range from.Fields {
			diff(ir.JoinPath(path, k), from.Values[i], to.Get(k), res)
		}
		for i, k := range to.Fields {
			if from.Index(k) < 0 {
				diff(ir.JoinPath(path, k), nil, to.Values[i], res)
			}
		}
		return
	}
	if sameNode(from, to) {
		return
	}
	c := MakeChange(path, from, to)
	switch {
	case from.Type == ir.StringType && to.Type == ir.StringType:
		c.Text = DiffString(from.String, to.String)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		c.Text = DiffArray(from, to)
	}
	*res = append(*res, c)
}

// sameNode is deep equality, with object key order ignored.
func sameNode(a, b *ir.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, k := range a.Fields {
			bv := b.Get(k)
			if bv == nil || !sameNode(a.Values[i], bv) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !sameNode(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return sameScalar(a, b)
}

// Equal reports whether two trees have no differences.
func Equal(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return sameNode(a, b)
}
