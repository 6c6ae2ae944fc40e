package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes the first YAML document of d keeping mapping order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadYAML, err)
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := NewObject()
		for _, item := range x {
			n, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprint(item.Key), n)
		}
		return res, nil
	case []any:
		res := FromSlice(make([]*Node, 0, len(x)))
		for _, e := range x {
			n, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	}
	return FromAny(v)
}

// ToOrdered converts y to values whose YAML encoding keeps key order.
func ToOrdered(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToOrdered(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, k := range y.Fields {
			res[i] = yaml.MapItem{Key: k, Value: ToOrdered(y.Values[i])}
		}
		return res
	default:
		return ToAny(y)
	}
}
