package libdiff

import "github.com/signadot/tony-format/hocon/ir"

// sameScalar reports whether two leaves are equal. Ints and doubles
// never compare equal, even with the same value.
func sameScalar(from, to *ir.Node) bool {
	if from.Type != to.Type {
		return false
	}
	switch from.Type {
	case ir.NullType:
		return true
	case ir.BoolType:
		return from.Bool == to.Bool
	case ir.IntType:
		return from.Int == to.Int
	case ir.DoubleType:
		return from.Double == to.Double
	default:
		return from.Text() == to.Text()
	}
}
