package ir

import "strings"

// SplitPath splits a dotted key path into its segments. The empty path
// has no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func JoinPath(segs ...string) string {
	var parts []string
	for _, s := range segs {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// GetPath walks a dotted key path through nested objects. It returns nil
// when a segment is missing or a non object is met before the last one.
func (y *Node) GetPath(path string) *Node {
	cur := y
	for _, seg := range SplitPath(path) {
		if cur == nil || cur.Type != ObjectType {
			return nil
		}
		cur = cur.Get(seg)
	}
	return cur
}

// SetPath registers v at a dotted key path, creating intermediate objects
// and replacing any non object met on the way.
func (y *Node) SetPath(path string, v *Node) {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return
	}
	cur := y
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil || next.Type != ObjectType {
			next = NewObject()
			cur.Set(seg, next)
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], v)
}

// Paths lists the dotted paths of every leaf and every object below y, in
// document order. Arrays count as leaves.
func (y *Node) Paths() []string {
	var res []string
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		for i, k := range n.Fields {
			p := JoinPath(prefix, k)
			res = append(res, p)
			if v := n.Values[i]; v.Type == ObjectType {
				walk(p, v)
			}
		}
	}
	if y != nil && y.Type == ObjectType {
		walk("", y)
	}
	return res
}
