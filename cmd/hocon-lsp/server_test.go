package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const uri = "file:///app.conf"

const content = `server {
  host = localhost
  port = 8080
}
url = "http://"${server.host}
broken = ${nope}
`

func open(t *testing.T, text string) *Server {
	t.Helper()
	s := newServer()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: text, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDiagnostics(t *testing.T) {
	s := open(t, content)
	diags := validateDocument(s.docs.get(uri))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityWarning || d.Message != "no value to replace ${nope}" {
		t.Errorf("got %v %q", d.Severity, d.Message)
	}
	if d.Range.Start.Line != 5 || d.Range.Start.Character != 0 {
		t.Errorf("range: got %+v", d.Range)
	}

	s = open(t, "a = 1\nb = [1,,2]\n")
	diags = validateDocument(s.docs.get(uri))
	if len(diags) != 1 || diags[0].Severity != protocol.DiagnosticSeverityError {
		t.Fatalf("got %v", diags)
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("error line: got %d want 1", diags[0].Range.Start.Line)
	}
}

func TestDidChangeKeepsLastGoodParse(t *testing.T) {
	s := open(t, content)
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{
			Range: protocol.Range{
				Start: protocol.Position{Line: 6, Character: 0},
				End:   protocol.Position{Line: 6, Character: 0},
			},
			Text: "x = ${serv",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(uri)
	if doc.err == nil {
		t.Fatal("expected a parse error for the unfinished reference")
	}
	if !strings.HasSuffix(doc.content, "x = ${serv") {
		t.Errorf("content: got %q", doc.content)
	}
	if doc.cfg == nil {
		t.Fatal("lost the last parsed configuration")
	}
	items, err := s.Completion(context.Background(), &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 6, Character: 10},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, it := range items.Items {
		labels = append(labels, it.Label)
	}
	if diff := cmp.Diff([]string{"server", "server.host", "server.port"}, labels); diff != "" {
		t.Errorf("completion (-want +got):\n%s", diff)
	}
}

func TestRefPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"a = ${ser", "ser", true},
		{"a = ${", "", true},
		{"a = ${b} c", "", false},
		{"a = b", "", false},
	}
	for _, tc := range tests {
		got, ok := refPrefix(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%q: got %q, %v want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHover(t *testing.T) {
	s := open(t, content)
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 4, Character: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		t.Fatal("no hover")
	}
	for _, want := range []string{"`url`", "string", "http://localhost"} {
		if !strings.Contains(h.Contents.Value, want) {
			t.Errorf("hover %q does not contain %q", h.Contents.Value, want)
		}
	}
	h, _ = s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 2, Character: 4},
		},
	})
	if h == nil || !strings.Contains(h.Contents.Value, "`server.port`") {
		t.Errorf("nested hover: got %v", h)
	}
}

func TestSemanticTokens(t *testing.T) {
	s := open(t, "// app\nport = 8080\nurl = ${host}\n")
	got := collectSemanticTokens(s.docs.get(uri))
	want := []tokenInfo{
		{line: 0, character: 0, length: 6, tokenType: protocol.SemanticTokenComment},
		{line: 1, character: 0, length: 4, tokenType: protocol.SemanticTokenProperty, modifiers: []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}},
		{line: 1, character: 5, length: 1, tokenType: protocol.SemanticTokenOperator},
		{line: 1, character: 7, length: 4, tokenType: protocol.SemanticTokenNumber},
		{line: 2, character: 0, length: 3, tokenType: protocol.SemanticTokenProperty, modifiers: []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}},
		{line: 2, character: 4, length: 1, tokenType: protocol.SemanticTokenOperator},
		{line: 2, character: 6, length: 7, tokenType: protocol.SemanticTokenVariable},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(tokenInfo{})); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	data := encodeTokens(got[:2])
	if diff := cmp.Diff([]uint32{0, 0, 6, 0, 0, 1, 0, 4, 5, 1}, data); diff != "" {
		t.Errorf("encoded (-want +got):\n%s", diff)
	}
}

func TestFormatting(t *testing.T) {
	s := open(t, "a:1,b { c = x }")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || !strings.Contains(edits[0].NewText, "b {") {
		t.Errorf("got %v", edits)
	}
}
