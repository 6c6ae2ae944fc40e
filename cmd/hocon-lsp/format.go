package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/format"
	"go.lsp.dev/protocol"
)

// Formatting re-renders a document that parses. Comments are not kept.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil || doc.cfg == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.cfg.Root(), &buf, encode.EncodeFormat(format.HOCONFormat)); err != nil {
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
