// Package parse provides wiki markup parsing support.
package parse

import (
	"strings"

	"github.com/wikitext-format/go-wikitext/debug"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/token"
)

// Parse scans and parses d into a document tree rooted at a Sentence
// node. The grammar is total, so there is no error to return: bytes
// which do not form markup are literal text, stray close delimiters
// and pipes are literal text, and unterminated constructs close at end
// of input.
func Parse(d []byte) *ir.Node {
	return ParseTokens(token.Scan(nil, d))
}

// ParseTokens parses an already scanned token sequence.
func ParseTokens(toks []token.Token) *ir.Node {
	if debug.Scan() {
		for i := range toks {
			debug.Logf("scan %d: %s %q\n", i, toks[i].Type, toks[i].Bytes)
		}
	}
	res := ir.Sentence()
	i := 0
	for i < len(toks) {
		res.Append(dispatch(toks, &i)...)
	}
	if debug.Parse() {
		debug.Logf("parse: %v\n", res)
	}
	return res
}

// dispatch consumes one construct starting at *pi and returns the
// nodes it produces, possibly none.
func dispatch(toks []token.Token, pi *int) []*ir.Node {
	t := &toks[*pi]
	switch t.Type {
	case token.TBoldOpen:
		*pi++
		return parseBold(toks, token.TBoldClose, pi)
	case token.TQuote3:
		*pi++
		return parseBold(toks, token.TQuote3, pi)
	case token.TQuote4:
		*pi++
		return parseQuote4(toks, pi)
	case token.TItalicOpen:
		*pi++
		return parseItalic(toks, token.TItalicClose, pi)
	case token.TQuote2:
		*pi++
		return parseItalic(toks, token.TQuote2, pi)
	case token.TQuote5:
		*pi++
		return parseQuote5(toks, pi)
	case token.TLinkOpen:
		*pi++
		return parseLink(toks, pi)
	default:
		// TText, and any close delimiter or pipe with nothing to
		// close: literal text.
		*pi++
		return []*ir.Node{ir.Text(string(t.Bytes))}
	}
}

// parseUntil consumes constructs until the closing token or end of
// input. The close token is consumed but not returned.
func parseUntil(toks []token.Token, close token.TokenType, pi *int) []*ir.Node {
	var res []*ir.Node
	for *pi < len(toks) {
		if toks[*pi].Type == close {
			*pi++
			return res
		}
		res = append(res, dispatch(toks, pi)...)
	}
	return res
}

func parseBold(toks []token.Token, close token.TokenType, pi *int) []*ir.Node {
	kids := parseUntil(toks, close, pi)
	if len(kids) == 0 {
		return nil
	}
	return []*ir.Node{ir.Bold(kids...)}
}

func parseItalic(toks []token.Token, close token.TokenType, pi *int) []*ir.Node {
	kids := parseUntil(toks, close, pi)
	if len(kids) == 0 {
		return nil
	}
	return []*ir.Node{ir.Italic(kids...)}
}

// parseQuote4 parses a bold span whose delimiters each carry one
// literal apostrophe. The apostrophes become the first and last
// children of the bold node, so they survive even when the span is
// otherwise empty.
func parseQuote4(toks []token.Token, pi *int) []*ir.Node {
	kids := parseUntil(toks, token.TQuote4, pi)
	res := make([]*ir.Node, 0, len(kids)+2)
	res = append(res, ir.Text("'"))
	res = append(res, kids...)
	res = append(res, ir.Text("'"))
	return []*ir.Node{ir.Bold(res...)}
}

func parseQuote5(toks []token.Token, pi *int) []*ir.Node {
	kids := parseUntil(toks, token.TQuote5, pi)
	if len(kids) == 0 {
		return nil
	}
	return []*ir.Node{ir.Italic(ir.Bold(kids...))}
}

// parseLink parses a link body: a target expression, then optionally a
// pipe and a display expression. Only the first pipe at link depth is
// significant; later pipes and pipes inside nested constructs are
// ordinary content.
func parseLink(toks []token.Token, pi *int) []*ir.Node {
	var (
		target  []*ir.Node
		display []*ir.Node
		sawPipe bool
	)
	cur := &target
	for *pi < len(toks) {
		t := &toks[*pi]
		if t.Type == token.TLinkClose {
			*pi++
			goto done
		}
		if t.Type == token.TPipe && !sawPipe {
			sawPipe = true
			cur = &display
			*pi++
			continue
		}
		*cur = append(*cur, dispatch(toks, pi)...)
	}
done:
	if sawPipe && len(display) == 0 {
		return nil
	}
	if !sawPipe {
		display = target
	}
	targetStr := textOf(target)
	if targetStr == "" {
		return display
	}
	return []*ir.Node{ir.Link(targetStr, display...)}
}

func textOf(nodes []*ir.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Text())
	}
	return sb.String()
}
