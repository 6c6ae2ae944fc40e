package ir

// Merge deep merges top over base and returns a new tree. Objects merge
// key by key; on any other conflict top wins. Keys of base come first,
// followed by keys only present in top. Neither input is modified.
func Merge(base, top *Node) *Node {
	if top == nil {
		return base.Clone()
	}
	if base == nil || base.Type != ObjectType || top.Type != ObjectType {
		return top.Clone()
	}
	res := base.Clone()
	for i, k := range top.Fields {
		tv := top.Values[i]
		res.Set(k, Merge(res.Get(k), tv))
	}
	return res
}
