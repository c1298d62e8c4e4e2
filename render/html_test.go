package render_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/parse"
	"github.com/wikitext-format/go-wikitext/render"
)

// TestHTMLStructure parses rendered HTML back and checks that element
// counts, anchor attributes and text content line up with the tree.
// Inputs avoid literal text that looks like markup, since renderings
// are not escaped.
func TestHTMLStructure(t *testing.T) {
	inputs := []string{
		"hello, world",
		"a <b>b</b> c ''d''",
		"pre [[link|pre ''italic'' post]] post",
		"<b>bold ''both'' [[x|y]]</b>",
		"[[https://go.dev|Go]] and [[a page#frag]]",
		"'''''quotes''''' of every ''''kind''''",
	}
	for _, in := range inputs {
		node := parse.Parse([]byte(in))
		out := render.MustString(node, render.RenderFormat(format.HTMLFormat))
		doc, err := html.Parse(strings.NewReader(out))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}

		counts := map[string]int{}
		var text strings.Builder
		var walk func(*html.Node)
		walk = func(h *html.Node) {
			switch h.Type {
			case html.ElementNode:
				counts[h.Data]++
				if h.Data == "a" {
					checkAnchor(t, in, h)
				}
			case html.TextNode:
				text.WriteString(h.Data)
			}
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(doc)

		if got := text.String(); got != node.Text() {
			t.Errorf("%q: text %q, want %q", in, got, node.Text())
		}
		want := map[string]int{
			"span": 1,
			"b":    count(node, ir.BoldType),
			"i":    count(node, ir.ItalicType),
			"a":    count(node, ir.LinkType),
		}
		for tag, n := range want {
			if counts[tag] != n {
				t.Errorf("%q: %d <%s> elements, want %d", in, counts[tag], tag, n)
			}
		}
	}
}

func count(node *ir.Node, t ir.Type) int {
	return len(node.Matching(func(n *ir.Node) bool { return n.Type == t }))
}

func checkAnchor(t *testing.T, in string, h *html.Node) {
	t.Helper()
	var class, href string
	for _, a := range h.Attr {
		switch a.Key {
		case "class":
			class = a.Val
		case "href":
			href = a.Val
		}
	}
	if class != "link" && class != "link external" {
		t.Errorf("%q: anchor class %q", in, class)
	}
	if href == "" {
		t.Errorf("%q: anchor without href", in)
	}
}
