package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/parse"
	"github.com/wikitext-format/go-wikitext/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	pos := params.Position
	off := lineColToOffset(doc.content, int(pos.Line), int(pos.Character))

	// Find the innermost link enclosing the cursor.
	span := doc.linkSpanAt(off)
	if span == nil {
		return nil, nil
	}

	hoverText := buildHoverText(doc, span)
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

// linkSpan is the byte range of one link in a document, from the
// opening delimiter to the end of the closing one.  close is -1 when
// the link runs to end of input.
type linkSpan struct {
	open, close int
	start, end  int
}

// linkSpans lists every link in doc, outer links before the links
// nested in their targets.  The stack discipline matches the parser:
// see unterminated.
func (doc *document) linkSpans() []linkSpan {
	type frame struct {
		close token.TokenType
		link  bool
		tok   int
	}
	var (
		spans []linkSpan
		stack []frame
	)
	for i := range doc.toks {
		t := &doc.toks[i]
		if n := len(stack); n > 0 && t.Type == stack[n-1].close {
			top := stack[n-1]
			stack = stack[:n-1]
			if top.link {
				spans = append(spans, linkSpan{
					open:  top.tok,
					close: i,
					start: doc.toks[top.tok].Pos.I,
					end:   t.End(),
				})
			}
			continue
		}
		if od, ok := openDelims[t.Type]; ok {
			stack = append(stack, frame{close: od.close, link: t.Type == token.TLinkOpen, tok: i})
		}
	}
	for _, f := range stack {
		if f.link {
			spans = append(spans, linkSpan{
				open:  f.tok,
				close: -1,
				start: doc.toks[f.tok].Pos.I,
				end:   len(doc.content),
			})
		}
	}
	return spans
}

// linkSpanAt returns the innermost link containing byte offset off,
// or nil.
func (doc *document) linkSpanAt(off int) *linkSpan {
	var best *linkSpan
	spans := doc.linkSpans()
	for i := range spans {
		sp := &spans[i]
		if off < sp.start || off >= sp.end {
			continue
		}
		if best == nil || sp.end-sp.start < best.end-best.start {
			best = sp
		}
	}
	return best
}

// buildHoverText reparses the link snippet and describes its
// reference.  A link whose target is empty contributes only display
// text and gets no hover.
func buildHoverText(doc *document, span *linkSpan) string {
	node := parse.Parse([]byte(doc.content[span.start:span.end]))
	links := node.Matching(func(n *ir.Node) bool { return n.Type == ir.LinkType })
	if len(links) == 0 {
		return ""
	}
	link := links[0]
	ref := link.Ref()

	parts := []string{fmt.Sprintf("**Link:** %s", ref.Kind)}
	parts = append(parts, fmt.Sprintf("**Target:** `%s`", link.Target))
	if ref.Kind == ir.ExternalRef {
		parts = append(parts, fmt.Sprintf("**Site:** `%s`", ref.Site))
	} else {
		if ref.Page != "" {
			parts = append(parts, fmt.Sprintf("**Page:** `%s`", ref.Page))
		}
		if ref.Anchor != "" {
			parts = append(parts, fmt.Sprintf("**Anchor:** `%s`", ref.Anchor))
		}
	}
	parts = append(parts, fmt.Sprintf("**Href:** `%s`", ref.String()))
	if text := link.Text(); text != "" && text != link.Target {
		parts = append(parts, fmt.Sprintf("**Text:** %s", text))
	}
	return strings.Join(parts, "\n\n")
}
