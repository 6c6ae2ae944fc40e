package main

import (
	"context"
	"strings"

	"github.com/signadot/tony-format/hocon/ir"
	"go.lsp.dev/protocol"
)

// Completion offers the key paths of the document inside an unclosed
// `${` on the current line.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.cfg == nil {
		return nil, nil
	}
	line := lineAt(doc.content, int(params.Position.Line))
	col := min(int(params.Position.Character), len(line))
	prefix, ok := refPrefix(string(line[:col]))
	if !ok {
		return nil, nil
	}
	return &protocol.CompletionList{Items: completePaths(doc.cfg.Root(), prefix)}, nil
}

// refPrefix returns the text typed after the last `${` of before, when that
// reference is not closed yet.
func refPrefix(before string) (string, bool) {
	i := strings.LastIndex(before, "${")
	if i < 0 {
		return "", false
	}
	prefix := before[i+2:]
	if strings.Contains(prefix, "}") {
		return "", false
	}
	return prefix, true
}

func completePaths(root *ir.Node, prefix string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, path := range root.Paths() {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindValue
		if n := root.GetPath(path); n != nil && n.Type == ir.ObjectType {
			kind = protocol.CompletionItemKindModule
		}
		items = append(items, protocol.CompletionItem{
			Label:      path,
			Kind:       kind,
			InsertText: strings.TrimPrefix(path, prefix),
		})
	}
	return items
}
