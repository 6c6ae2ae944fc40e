package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tony-format/hocon/format"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	compact       bool

	format format.Format
	buf    bytes.Buffer

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(ir.ToOrdered(node))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		es.json(node)
	case format.HOCONFormat:
		if node.Type == ir.ObjectType && !es.compact && len(node.Fields) != 0 {
			es.fields(node)
		} else {
			es.value(node)
		}
	default:
		return fmt.Errorf("%w: %s", ErrEncoding, es.format)
	}
	es.buf.WriteByte('\n')
	_, err := w.Write(es.buf.Bytes())
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) nl() {
	if es.compact {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) fields(node *ir.Node) {
	for i, k := range node.Fields {
		if i > 0 {
			if es.compact {
				es.buf.WriteString(es.color(ir.ObjectType, PunctColor, ",") + " ")
			} else {
				es.nl()
			}
		}
		if token.KeyNeedsQuote(k) {
			k = token.Quote(k)
		}
		es.buf.WriteString(es.color(ir.ObjectType, KeyColor, k))
		v := node.Values[i]
		if v.Type == ir.ObjectType {
			es.buf.WriteByte(' ')
		} else {
			es.buf.WriteString(" " + es.color(v.Type, PunctColor, "=") + " ")
		}
		es.value(v)
	}
}

func (es *EncState) value(node *ir.Node) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "{}"))
			return
		}
		es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "{"))
		es.depth++
		es.nl()
		es.fields(node)
		es.depth--
		es.nl()
		es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "}"))
	case ir.ArrayType:
		es.array(node, es.value)
	case ir.PendingType:
		for i, s := range node.Segments {
			if i > 0 && !s.IsRef() {
				es.buf.WriteByte(' ')
			}
			if s.IsRef() {
				es.buf.WriteString(es.color(ir.PendingType, SubstColor, "${"+s.Ref+"}"))
				continue
			}
			es.buf.WriteString(es.color(ir.PendingType, ValueColor, token.Quote(s.Lit.Text())))
		}
	case ir.StringType:
		s := node.String
		if multiline(s) {
			es.buf.WriteString(es.color(ir.StringType, MultilineColor, `"""`+s+`"""`))
			return
		}
		if token.NeedsQuote(s) {
			s = token.Quote(s)
		}
		es.buf.WriteString(es.color(ir.StringType, ValueColor, s))
	default:
		es.buf.WriteString(es.color(node.Type, ValueColor, scalar(node)))
	}
}

func (es *EncState) array(node *ir.Node, elt func(*ir.Node)) {
	if len(node.Values) == 0 {
		es.buf.WriteString(es.color(ir.ArrayType, PunctColor, "[]"))
		return
	}
	inline := es.compact
	if !inline {
		inline = true
		for _, v := range node.Values {
			if !v.Type.IsLeaf() || multiline(v.String) {
				inline = false
				break
			}
		}
	}
	es.buf.WriteString(es.color(ir.ArrayType, PunctColor, "["))
	if inline {
		for i, v := range node.Values {
			if i > 0 {
				es.buf.WriteString(es.color(ir.ArrayType, PunctColor, ",") + " ")
			}
			elt(v)
		}
		es.buf.WriteString(es.color(ir.ArrayType, PunctColor, "]"))
		return
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			es.buf.WriteString(es.color(ir.ArrayType, PunctColor, ","))
		}
		es.nl()
		elt(v)
	}
	es.depth--
	es.nl()
	es.buf.WriteString(es.color(ir.ArrayType, PunctColor, "]"))
}

func (es *EncState) json(node *ir.Node) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "{}"))
			return
		}
		es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "{"))
		es.depth++
		for i, k := range node.Fields {
			if i > 0 {
				es.buf.WriteString(es.color(ir.ObjectType, PunctColor, ","))
			}
			es.nl()
			es.buf.WriteString(es.color(ir.ObjectType, KeyColor, token.Quote(k)))
			es.buf.WriteString(es.color(ir.ObjectType, PunctColor, ":"))
			if !es.compact {
				es.buf.WriteByte(' ')
			}
			es.json(node.Values[i])
		}
		es.depth--
		es.nl()
		es.buf.WriteString(es.color(ir.ObjectType, PunctColor, "}"))
	case ir.ArrayType:
		es.array(node, es.json)
	case ir.StringType, ir.PendingType:
		es.buf.WriteString(es.color(node.Type, ValueColor, token.Quote(node.Text())))
	default:
		es.buf.WriteString(es.color(node.Type, ValueColor, scalar(node)))
	}
}

func scalar(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.DoubleType:
		s := node.Text()
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	default:
		return node.Text()
	}
}

func multiline(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	return !strings.Contains(s, `"""`) && !strings.HasSuffix(s, `"`)
}
