package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/tony-format/hocon/token"
	"go.lsp.dev/protocol"
)

// tokenTypes and tokenModifiers form the legend announced in Initialize;
// token type indexes refer to this slice.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenVariable,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

const (
	inlineStops = "{}[],:=#\"$"
)

// collectSemanticTokens lexes the document content. Keys are taken from
// the positions recorded while parsing so that keys and unquoted values,
// which look alike, are told apart.
func collectSemanticTokens(doc *document) []tokenInfo {
	rs := []rune(doc.content)
	pd := token.NewPosDoc(rs)
	keys := map[int]int{}
	for _, pos := range doc.positions {
		if doc.err == nil && pos.I < len(rs) {
			keys[pos.I] = keyEnd(rs, pos.I)
		}
	}

	var tokenList []tokenInfo
	emit := func(start, end int, tt protocol.SemanticTokenTypes, mods ...protocol.SemanticTokenModifiers) {
		// tokens may not span lines
		for start < end {
			stop := start
			for stop < end && rs[stop] != '\n' {
				stop++
			}
			if stop > start {
				line, col := pd.LineCol(start)
				tokenList = append(tokenList, tokenInfo{
					line:      uint32(line),
					character: uint32(col),
					length:    uint32(stop - start),
					tokenType: tt,
					modifiers: mods,
				})
			}
			start = stop + 1
		}
	}

	for i := 0; i < len(rs); {
		if end, ok := keys[i]; ok && end > i {
			emit(i, end, protocol.SemanticTokenProperty, protocol.SemanticTokenModifierDefinition)
			i = end
			continue
		}
		r := rs[i]
		switch {
		case r == '#' || commentAt(rs, i):
			end := i
			for end < len(rs) && rs[end] != '\n' {
				end++
			}
			emit(i, end, protocol.SemanticTokenComment)
			i = end
		case r == '"':
			end := stringEnd(rs, i)
			emit(i, end, protocol.SemanticTokenString)
			i = end
		case r == '$' && i+1 < len(rs) && rs[i+1] == '{':
			end := i + 2
			for end < len(rs) && rs[end] != '}' && rs[end] != '\n' {
				end++
			}
			if end < len(rs) && rs[end] == '}' {
				end++
			}
			emit(i, end, protocol.SemanticTokenVariable)
			i = end
		case r == '=' || r == ':':
			emit(i, i+1, protocol.SemanticTokenOperator)
			i++
		case token.IsWhitespace(r) || strings.ContainsRune("{}[],$", r):
			i++
		default:
			end := i
			for end < len(rs) && !token.IsWhitespace(rs[end]) && !strings.ContainsRune(inlineStops, rs[end]) && !commentAt(rs, end) {
				end++
			}
			if end == i {
				i++
				continue
			}
			emit(i, end, wordType(string(rs[i:end])))
			i = end
		}
	}

	sort.Slice(tokenList, func(i, j int) bool {
		if tokenList[i].line != tokenList[j].line {
			return tokenList[i].line < tokenList[j].line
		}
		return tokenList[i].character < tokenList[j].character
	})
	return tokenList
}

func wordType(w string) protocol.SemanticTokenTypes {
	switch {
	case w == "true" || w == "false" || w == "null":
		return protocol.SemanticTokenKeyword
	case token.IsInt(w) || token.IsFloat(w):
		return protocol.SemanticTokenNumber
	default:
		return protocol.SemanticTokenString
	}
}

func commentAt(rs []rune, i int) bool {
	return rs[i] == '/' && i+1 < len(rs) && rs[i+1] == '/'
}

// stringEnd returns the offset after the string starting at i, which is
// either a triple quoted string or a single line quoted one.
func stringEnd(rs []rune, i int) int {
	if strings.HasPrefix(string(rs[i:min(i+3, len(rs))]), `"""`) {
		j := i + 3
		for j+2 < len(rs) {
			if rs[j] == '"' && rs[j+1] == '"' && rs[j+2] == '"' {
				j += 3
				for j < len(rs) && rs[j] == '"' {
					j++
				}
				return j
			}
			j++
		}
		return len(rs)
	}
	j := i + 1
	for j < len(rs) && rs[j] != '\n' {
		switch rs[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
		j++
	}
	return min(j, len(rs))
}

// keyEnd returns the offset after the key starting at i.
func keyEnd(rs []rune, i int) int {
	for i < len(rs) {
		r := rs[i]
		if r == '"' {
			i = stringEnd(rs, i)
			continue
		}
		if token.IsWhitespace(r) || strings.ContainsRune(":={[", r) {
			break
		}
		i++
	}
	return i
}

// encodeTokens delta encodes tokens the way the protocol expects.
func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokenModifierBits := uint32(0)
		for _, mod := range ti.modifiers {
			if modIdx, ok := modifierMap[mod]; ok {
				tokenModifierBits |= 1 << modIdx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], tokenModifierBits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(collectSemanticTokens(doc))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var inRange []tokenInfo
	for _, ti := range collectSemanticTokens(doc) {
		if ti.line < params.Range.Start.Line || ti.line > params.Range.End.Line {
			continue
		}
		inRange = append(inRange, ti)
	}
	return &protocol.SemanticTokens{Data: encodeTokens(inRange)}, nil
}
