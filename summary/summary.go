// Package summary reduces a document tree to its structured summary: the
// plain text plus every link and formatted span found in the subtree.
package summary

import (
	"github.com/wikitext-format/go-wikitext/ir"
)

type Summary struct {
	Text       string      `json:"text"`
	Links      []Link      `json:"links,omitempty"`
	Formatting *Formatting `json:"formatting,omitempty"`
}

// Link describes one link node. Site is set for external links, Page
// and Anchor for internal ones.
type Link struct {
	Type   ir.RefKind `json:"type"`
	Text   string     `json:"text"`
	Site   string     `json:"site,omitempty"`
	Page   string     `json:"page,omitempty"`
	Anchor string     `json:"anchor,omitempty"`
}

type Formatting struct {
	Bold   []string `json:"bold,omitempty"`
	Italic []string `json:"italic,omitempty"`
}

// Summarize builds the summary of n. The search runs over the whole
// subtree and does not stop at a match, so links inside bold spans and
// bold spans inside links are both collected. Non-sentence nodes
// produce a degenerate summary: their plain text for Text, Bold and
// Italic, an empty summary otherwise.
func Summarize(n *ir.Node) *Summary {
	switch n.Type {
	case ir.SentenceType:
	case ir.TextType, ir.BoldType, ir.ItalicType:
		return &Summary{Text: n.Text()}
	default:
		return &Summary{}
	}
	res := &Summary{Text: n.Text()}
	for _, l := range n.Matching(isType(ir.LinkType)) {
		ref := l.Ref()
		res.Links = append(res.Links, Link{
			Type:   ref.Kind,
			Text:   l.Text(),
			Site:   ref.Site,
			Page:   ref.Page,
			Anchor: ref.Anchor,
		})
	}
	var f Formatting
	for _, b := range n.Matching(isType(ir.BoldType)) {
		f.Bold = append(f.Bold, b.Text())
	}
	for _, i := range n.Matching(isType(ir.ItalicType)) {
		f.Italic = append(f.Italic, i.Text())
	}
	if f.Bold != nil || f.Italic != nil {
		res.Formatting = &f
	}
	return res
}

func isType(t ir.Type) func(*ir.Node) bool {
	return func(n *ir.Node) bool { return n.Type == t }
}
