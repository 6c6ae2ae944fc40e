package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.cfg == nil {
		return nil, nil
	}
	path := findPathAtPosition(doc, int(params.Position.Line), int(params.Position.Character))
	if path == "" {
		return nil, nil
	}
	hoverText := buildHoverText(doc, path)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findPathAtPosition returns the key path declared on line whose key starts
// closest before col. Later declarations on the same line win ties, which
// favors the innermost key of `a { b = 1 }`.
func findPathAtPosition(doc *document, line, col int) string {
	best, bestCol := "", -1
	for path, pos := range doc.positions {
		l, c := pos.LineCol()
		if l != line || c > col {
			continue
		}
		if c > bestCol || (c == bestCol && len(path) > len(best)) {
			best, bestCol = path, c
		}
	}
	return best
}

func buildHoverText(doc *document, path string) string {
	parts := []string{fmt.Sprintf("**Path:** `%s`", path)}
	v, err := doc.cfg.GetValue(path)
	switch {
	case err != nil:
		parts = append(parts, fmt.Sprintf("**Error:** %s", err))
	case v == nil:
		parts = append(parts, "**Value:** `null`")
	default:
		parts = append(parts, fmt.Sprintf("**Type:** %s", getTypeInfo(v)))
		if raw := doc.cfg.Root().GetPath(path); raw != nil && raw.Type == ir.PendingType {
			parts = append(parts, fmt.Sprintf("**Source:** `%s`", raw.Text()))
		}
		parts = append(parts, fmt.Sprintf("**Value:** %s", getValueInfo(v)))
	}
	return strings.Join(parts, "\n\n")
}

func getTypeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.IntType:
		return "integer"
	case ir.DoubleType:
		return "double"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	}
	val := encode.MustString(node, encode.Compact(true))
	if len(val) > 80 {
		val = val[:80] + "..."
	}
	return "`" + val + "`"
}
