package main

import (
	"context"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/wikitext-format/go-wikitext/token"
)

// semanticTokenTypes is the legend announced in Initialize.  Indexes
// into it are what encodeSemanticTokens emits.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenOperator,
}

func typeIndex(tt protocol.SemanticTokenTypes) uint32 {
	for i, t := range semanticTokenTypes {
		if t == tt {
			return uint32(i)
		}
	}
	return 0
}

func semanticTokenType(t token.TokenType) (protocol.SemanticTokenTypes, bool) {
	switch t {
	case token.TBoldOpen, token.TBoldClose, token.TItalicOpen, token.TItalicClose,
		token.TQuote2, token.TQuote3, token.TQuote4, token.TQuote5:
		return protocol.SemanticTokenKeyword, true
	case token.TLinkOpen, token.TLinkClose, token.TPipe:
		return protocol.SemanticTokenOperator, true
	}
	return "", false
}

type tokenInfo struct {
	pos       protocol.Position
	length    uint32
	tokenType protocol.SemanticTokenTypes
}

// semanticTokenList reports the markup delimiters of doc.  It replays
// the parse with the same stack discipline as unterminated, so close
// delimiters that the parser treats as literal text are not
// highlighted, and only the pipe that splits a link is an operator.
func semanticTokenList(doc *document) []tokenInfo {
	type frame struct {
		close    token.TokenType
		link     bool
		pipeSeen bool
	}
	var (
		list  []tokenInfo
		stack []frame
	)
	for i := range doc.toks {
		t := &doc.toks[i]
		var (
			tt protocol.SemanticTokenTypes
			ok bool
		)
		switch {
		case len(stack) > 0 && t.Type == stack[len(stack)-1].close:
			stack = stack[:len(stack)-1]
			tt, ok = semanticTokenType(t.Type)
		case t.Type == token.TPipe:
			if n := len(stack); n > 0 && stack[n-1].link && !stack[n-1].pipeSeen {
				stack[n-1].pipeSeen = true
				tt, ok = protocol.SemanticTokenOperator, true
			}
		default:
			if od, isOpen := openDelims[t.Type]; isOpen {
				stack = append(stack, frame{close: od.close, link: t.Type == token.TLinkOpen})
				tt, ok = semanticTokenType(t.Type)
			}
		}
		if !ok {
			continue
		}
		list = append(list, tokenInfo{
			pos:       doc.positions[i],
			length:    uint32(utf8.RuneCount(t.Bytes)),
			tokenType: tt,
		})
	}
	return list
}

// encodeSemanticTokens delta encodes list per the LSP wire format:
// five uint32 per token.  Scan order is document order, which the
// encoding requires.
func encodeSemanticTokens(list []tokenInfo) []uint32 {
	data := make([]uint32, 0, 5*len(list))
	var prevLine, prevChar uint32
	for _, ti := range list {
		deltaLine := ti.pos.Line - prevLine
		deltaChar := ti.pos.Character
		if deltaLine == 0 {
			deltaChar = ti.pos.Character - prevChar
		}
		data = append(data, deltaLine, deltaChar, ti.length, typeIndex(ti.tokenType), 0)
		prevLine = ti.pos.Line
		prevChar = ti.pos.Character
	}
	return data
}

func inRange(p protocol.Position, r protocol.Range) bool {
	if p.Line < r.Start.Line || (p.Line == r.Start.Line && p.Character < r.Start.Character) {
		return false
	}
	if p.Line > r.End.Line || (p.Line == r.End.Line && p.Character > r.End.Character) {
		return false
	}
	return true
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(semanticTokenList(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	// The stack walk has to start from the top of the document either
	// way, so filter its result rather than its input.
	list := semanticTokenList(doc)
	filtered := list[:0:0]
	for _, ti := range list {
		if inRange(ti.pos, params.Range) {
			filtered = append(filtered, ti)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(filtered),
	}, nil
}
