package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// FromAny converts plain Go values (as produced by encoding/json or
// literal map[string]any trees) to a Node. Map keys are sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromDouble(float64(x)), nil
	case float64:
		return FromDouble(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrUnsupported, x)
		}
		return FromDouble(f), nil
	case []any:
		res := FromSlice(make([]*Node, 0, len(x)))
		for _, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, n)
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := FromSlice(make([]*Node, 0, rv.Len()))
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := NewObject()
		for _, k := range keys {
			n, err := FromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			res.Set(k, n)
		}
		return res, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, rv.Interface())
}

func MustFromAny(v any) *Node {
	n, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return n
}

// ToAny converts a Node to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Pending values become their text.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int
	case DoubleType:
		return y.Double
	case StringType, PendingType:
		return y.Text()
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, k := range y.Fields {
			res[k] = ToAny(y.Values[i])
		}
		return res
	default:
		return nil
	}
}
