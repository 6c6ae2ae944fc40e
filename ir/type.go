package ir

// Type tags the kind of value a Node holds.
type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	DoubleType
	StringType
	ArrayType
	ObjectType
	// PendingType marks a value whose segments still need resolving.
	PendingType

	nTypes
)

var typeNames = [nTypes]string{"Null", "Bool", "Int", "Double", "String", "Array", "Object", "Pending"}

func (t Type) String() string {
	if t < 0 || t >= nTypes {
		return "<unknown type>"
	}
	return typeNames[t]
}

func Types() []Type {
	res := make([]Type, nTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// IsLeaf reports whether values of type t are scalars.
func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}
