package libdiff

import "github.com/signadot/tony-format/hocon/ir"

// Reverse returns the changes undoing cs, in reverse order.
func Reverse(cs []Change) []Change {
	res := make([]Change, 0, len(cs))
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		r := MakeChange(c.Path, c.To, c.From)
		if c.Text != "" {
			switch {
			case r.From.Type == ir.StringType && r.To.Type == ir.StringType:
				r.Text = DiffString(r.From.String, r.To.String)
			default:
				r.Text = DiffArray(r.From, r.To)
			}
		}
		res = append(res, r)
	}
	return res
}
