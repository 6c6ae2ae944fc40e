package ir

import (
	"github.com/signadot/tony-format/hocon/token"
	"github.com/tidwall/gjson"
)

// FromJSON decodes JSON text keeping the key order of objects.
func FromJSON(d []byte) (*Node, error) {
	if !gjson.ValidBytes(d) {
		return nil, ErrBadJSON
	}
	return fromResult(gjson.ParseBytes(d)), nil
}

func fromResult(r gjson.Result) *Node {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.True:
		return FromBool(true)
	case gjson.False:
		return FromBool(false)
	case gjson.Number:
		if token.IsInt(r.Raw) {
			return FromInt(r.Int())
		}
		return FromDouble(r.Float())
	case gjson.String:
		return FromString(r.Str)
	}
	if r.IsArray() {
		res := FromSlice(nil)
		r.ForEach(func(_, v gjson.Result) bool {
			res.Values = append(res.Values, fromResult(v))
			return true
		})
		return res
	}
	res := NewObject()
	r.ForEach(func(k, v gjson.Result) bool {
		res.Set(k.Str, fromResult(v))
		return true
	})
	return res
}
