package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/tony-format/hocon"
	"github.com/signadot/tony-format/hocon/debug"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/parse"
	"github.com/signadot/tony-format/hocon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document. cfg and positions come from the last
// content that parsed, so that hover and completion keep working while an
// edit is in progress; err is the parse error of the current content.
type document struct {
	uri       string
	content   string
	version   int32
	cfg       *hocon.Config
	positions map[string]*token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{uri: uri, content: content, version: version}
	if prev := ds.docs[uri]; prev != nil {
		doc.cfg, doc.positions = prev.cfg, prev.positions
	}
	positions := make(map[string]*token.Pos)
	cfg, err := hocon.Parse([]byte(content), parse.ParsePositions(positions))
	switch {
	case err == nil:
		doc.cfg, doc.positions = cfg, positions
	case errors.Is(err, hocon.ErrEmptyContent):
		doc.cfg, doc.positions = nil, positions
	default:
		doc.err = err
	}
	if debug.LSP() {
		debug.Logf("put %s version %d: %v\n", uri, version, err)
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports the parse error of a document or, when it
// parses, every value whose references do not resolve. Unresolved
// references are warnings since another file may provide them.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   "hocon",
		}
		fe := &token.FormatErr{}
		if errors.As(doc.err, &fe) && fe.Pos != nil {
			d.Range = pointRange(fe.Pos)
		}
		return append(diagnostics, d)
	}
	if doc.cfg == nil {
		return diagnostics
	}
	for _, path := range doc.cfg.Root().Paths() {
		if n := doc.cfg.Root().GetPath(path); n.Type == ir.ObjectType {
			continue
		}
		if _, err := doc.cfg.GetValue(path); err != nil {
			d := protocol.Diagnostic{
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  err.Error(),
				Source:   "hocon",
			}
			if pos := doc.positions[path]; pos != nil {
				d.Range = pointRange(pos)
			}
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics
}

func pointRange(pos *token.Pos) protocol.Range {
	line, col := pos.LineCol()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChanges applies incremental edits. A change with a zero range
// replaces the whole content.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
			continue
		}
		contentRunes := []rune(content)
		startOffset := lineColToOffset(contentRunes, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
		endOffset := lineColToOffset(contentRunes, int(rangeVal.End.Line), int(rangeVal.End.Character))
		if startOffset <= endOffset {
			content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
		}
	}
	return content
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset returns the rune offset of a position, clamped to the
// end of the content.
func lineColToOffset(content []rune, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

// lineAt returns line n of content.
func lineAt(content string, n int) []rune {
	rs := []rune(content)
	start := lineColToOffset(rs, n, 0)
	end := start
	for end < len(rs) && rs[end] != '\n' {
		end++
	}
	return rs[start:end]
}
