package main

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/wikitext-format/go-wikitext/debug"
	"github.com/wikitext-format/go-wikitext/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is one open editor buffer together with its scan.  The
// token list and per-token positions are rebuilt on every edit; the
// scanner is fast enough that incremental rescans are not worth the
// bookkeeping.
type document struct {
	uri     string
	content string
	version int32

	toks      []token.Token
	positions []protocol.Position
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	toks := token.Scan(nil, []byte(content))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		toks:      toks,
		positions: tokenPositions(content, toks),
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// tokenPositions maps every token start to a 0-based line and
// character position.  Characters count runes, not bytes, which is
// what the editor protocol expects for the text this server sees.
func tokenPositions(content string, toks []token.Token) []protocol.Position {
	positions := make([]protocol.Position, len(toks))
	var line, col uint32
	ti := 0
	for i, r := range content {
		for ti < len(toks) && toks[ti].Pos.I == i {
			positions[ti] = protocol.Position{Line: line, Character: col}
			ti++
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	for ti < len(toks) {
		positions[ti] = protocol.Position{Line: line, Character: col}
		ti++
	}
	return positions
}

// lineColToOffset converts a 0-based line and character position to a
// byte offset in content.
func lineColToOffset(content string, line, col int) int {
	currentLine, currentCol := 0, 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		if change.Range == (protocol.Range{}) {
			// No range means full content replacement.
			content = change.Text
			continue
		}
		startOffset := lineColToOffset(content, int(change.Range.Start.Line), int(change.Range.Start.Character))
		endOffset := lineColToOffset(content, int(change.Range.End.Line), int(change.Range.End.Character))
		if startOffset <= endOffset && endOffset <= len(content) {
			content = content[:startOffset] + change.Text + content[endOffset:]
		}
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp diagnostics %s v%d: %d tokens, %d open\n",
			doc.uri, doc.version, len(doc.toks), len(diagnostics))
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: diagnostics,
	})
}

// openDelim describes a construct an open delimiter starts: what to
// call it and which token type closes it.
type openDelim struct {
	what  string
	close token.TokenType
	tok   int
}

var openDelims = map[token.TokenType]openDelim{
	token.TBoldOpen:   {what: "bold tag", close: token.TBoldClose},
	token.TItalicOpen: {what: "italic tag", close: token.TItalicClose},
	token.TQuote2:     {what: "italic quotes", close: token.TQuote2},
	token.TQuote3:     {what: "bold quotes", close: token.TQuote3},
	token.TQuote4:     {what: "bold quotes", close: token.TQuote4},
	token.TQuote5:     {what: "bold italic quotes", close: token.TQuote5},
	token.TLinkOpen:   {what: "link", close: token.TLinkClose},
}

// unterminated walks toks the way the parser does and reports the
// constructs still open at end of input.  Only the innermost construct
// can be closed by its delimiter; a close delimiter for anything else
// is literal text, so a single stack reproduces the parse exactly.
func unterminated(toks []token.Token) []openDelim {
	var stack []openDelim
	for i := range toks {
		if n := len(stack); n > 0 && toks[i].Type == stack[n-1].close {
			stack = stack[:n-1]
			continue
		}
		if od, ok := openDelims[toks[i].Type]; ok {
			od.tok = i
			stack = append(stack, od)
		}
	}
	return stack
}

// validateDocument reports unterminated constructs.  The grammar is
// total, so nothing here is an error: the parser closes every open
// construct at end of input, and these warnings say where that will
// happen.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, od := range unterminated(doc.toks) {
		start := doc.positions[od.tok]
		length := uint32(utf8.RuneCount(doc.toks[od.tok].Bytes))
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: start,
				End:   protocol.Position{Line: start.Line, Character: start.Character + length},
			},
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   "wikitext",
			Message:  fmt.Sprintf("unterminated %s closes at end of document", od.what),
		})
	}
	return diagnostics
}
