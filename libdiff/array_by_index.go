package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/tony-format/hocon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray describes how one array turned into another, one line per
// removed or inserted element, prefixed by its index. Elements are
// summarized to runes and the rune sequences diffed, so equal runs are
// recognized even when elements shift position. It returns "" for equal
// arrays.
func DiffArray(from, to *ir.Node) string {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	b := &strings.Builder{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				line(b, "-", fi, from.Values[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				line(b, "+", ti, to.Values[ti])
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				if !sameNode(from.Values[fi], to.Values[ti]) {
					line(b, "-", fi, from.Values[fi])
					line(b, "+", ti, to.Values[ti])
				}
				fi++
				ti++
			}
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func line(b *strings.Builder, sign string, i int, v *ir.Node) {
	b.WriteString(sign + "[" + strconv.Itoa(i) + "] " + compact(v) + "\n")
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr identifies scalars by type and value and containers by type
// alone.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
	}
	return node.Type.String() + "-" + node.Text()
}
