package libdiff

import (
	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/ir"
)

// Change is one difference between two configurations at a dotted path.
// Text holds a readable inline diff for changed strings and arrays.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
	Text string
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return c.Kind.Sign() + " " + c.Path + " = " + compact(c.To)
	case Removed:
		return c.Kind.Sign() + " " + c.Path + " = " + compact(c.From)
	}
	if c.Text != "" {
		return c.Kind.Sign() + " " + c.Path + ": " + c.Text
	}
	return c.Kind.Sign() + " " + c.Path + ": " + compact(c.From) + " -> " + compact(c.To)
}

func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Path: path, Kind: Added, To: to}
	case to == nil:
		return Change{Path: path, Kind: Removed, From: from}
	default:
		return Change{Path: path, Kind: Changed, From: from, To: to}
	}
}

func compact(n *ir.Node) string {
	return encode.MustString(n, encode.Compact(true))
}

// Plain is String without the terminal escapes of string diffs.
func (c Change) Plain() string {
	if c.Kind == Changed && c.From.Type == ir.StringType && c.To.Type == ir.StringType {
		c.Text = ""
	}
	return c.String()
}
