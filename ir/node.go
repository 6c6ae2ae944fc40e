package ir

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Node is a configuration value. Objects keep their keys in Fields with
// the matching values at the same index of Values; arrays only use Values.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Int    int64
	Double float64

	// Segments holds the parts of a PendingType value.
	Segments []Segment
}

// Segment is one part of a value: a literal node or a reference to a
// key path. Cached is set when the reference was resolved while parsing.
type Segment struct {
	Ref    string
	Lit    *Node
	Cached *Node
}

func (s Segment) IsRef() bool {
	return s.Lit == nil
}

func Ref(path string) Segment {
	return Segment{Ref: path}
}

func Lit(n *Node) Segment {
	return Segment{Lit: n}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromDouble(v float64) *Node {
	return &Node{Type: DoubleType, Double: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
}

// FromKeyVals builds an object from alternating keys and values.
func FromKeyVals(kvs ...any) *Node {
	res := NewObject()
	for i := 0; i+1 < len(kvs); i += 2 {
		k, _ := kvs[i].(string)
		v, ok := kvs[i+1].(*Node)
		if !ok {
			v = MustFromAny(kvs[i+1])
		}
		res.Set(k, v)
	}
	return res
}

func FromSegments(segs []Segment) *Node {
	return &Node{Type: PendingType, Segments: segs}
}

func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

// Index returns the position of key in an object, or -1.
func (y *Node) Index(key string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	return slices.Index(y.Fields, key)
}

// Get returns the value of key in an object, or nil.
func (y *Node) Get(key string) *Node {
	i := y.Index(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Set replaces the value of key in place or appends the key.
func (y *Node) Set(key string, v *Node) {
	if i := y.Index(key); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

func (y *Node) Delete(key string) bool {
	i := y.Index(key)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Keys returns a copy of the object's keys in insertion order.
func (y *Node) Keys() []string {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Int:    y.Int,
		Double: y.Double,
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if y.Segments != nil {
		dst.Segments = make([]Segment, len(y.Segments))
		for i, s := range y.Segments {
			dst.Segments[i] = Segment{Ref: s.Ref, Lit: s.Lit.Clone(), Cached: s.Cached.Clone()}
		}
	}
	return dst
}

// Text is the string form of a scalar as used in concatenation and by
// string getters. Arrays and objects have no text form and yield "".
func (y *Node) Text() string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case IntType:
		return strconv.FormatInt(y.Int, 10)
	case DoubleType:
		return FormatDouble(y.Double)
	case StringType:
		return y.String
	case PendingType:
		b := &strings.Builder{}
		for _, s := range y.Segments {
			if s.IsRef() {
				b.WriteString("${" + s.Ref + "}")
				continue
			}
			b.WriteString(s.Lit.Text())
		}
		return b.String()
	default:
		return ""
	}
}

// FormatDouble renders f in plain decimal notation where that stays short,
// falling back to exponent notation for very large or small magnitudes.
func FormatDouble(f float64) string {
	a := math.Abs(f)
	if a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
