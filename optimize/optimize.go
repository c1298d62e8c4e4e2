// Package optimize normalizes parsed document trees.
package optimize

import (
	"github.com/wikitext-format/go-wikitext/debug"
	"github.com/wikitext-format/go-wikitext/ir"
)

type optState struct {
	combineText   bool
	combineItalic bool
	combineBold   bool
	flattenLink   bool
	flattenItalic bool
	flattenBold   bool
}

// optCtx records which construct kinds are active ancestors. A kind's
// flag is set on entering a node of that kind, and only when its
// flatten option is enabled, so disabling an option keeps that kind's
// nesting intact.
type optCtx struct {
	inLink   bool
	inItalic bool
	inBold   bool
}

// Optimize rewrites the tree rooted at n in place and returns it:
// same-kind nesting is flattened against any ancestor of that kind,
// and adjacent siblings of the same kind are merged. Sibling order
// never changes and the plain text rendering of the tree is invariant.
// Optimize is idempotent.
func Optimize(n *ir.Node, opts ...Option) *ir.Node {
	os := &optState{
		combineText:   true,
		combineItalic: true,
		combineBold:   true,
		flattenLink:   true,
		flattenItalic: true,
		flattenBold:   true,
	}
	for _, opt := range opts {
		opt(os)
	}
	res := os.optimize(n, optCtx{})
	if debug.Optimize() {
		debug.Logf("optimize: %v\n", res)
	}
	return res
}

func (os *optState) optimize(n *ir.Node, ctx optCtx) *ir.Node {
	if n.Type.IsLeaf() || len(n.Children) == 0 {
		return n
	}
	ctx = os.enter(n, ctx)
	n.Children = os.flatten(n.Children, ctx)
	for _, c := range n.Children {
		os.optimize(c, ctx)
	}
	if os.combineText {
		os.merge(n, ir.TextType, ctx)
	}
	if os.combineItalic {
		os.merge(n, ir.ItalicType, ctx)
	}
	if os.combineBold {
		os.merge(n, ir.BoldType, ctx)
	}
	n.Reindex()
	return n
}

func (os *optState) enter(n *ir.Node, ctx optCtx) optCtx {
	switch n.Type {
	case ir.LinkType:
		if os.flattenLink {
			ctx.inLink = true
		}
	case ir.ItalicType:
		if os.flattenItalic {
			ctx.inItalic = true
		}
	case ir.BoldType:
		if os.flattenBold {
			ctx.inBold = true
		}
	}
	return ctx
}

// flatten splices out children made redundant by an active ancestor of
// the same kind. Spliced-in grandchildren are re-examined against the
// same context, so chains of nesting collapse in one pass.
func (os *optState) flatten(children []*ir.Node, ctx optCtx) []*ir.Node {
	res := make([]*ir.Node, 0, len(children))
	var flat func(cs []*ir.Node)
	flat = func(cs []*ir.Node) {
		for _, c := range cs {
			if os.redundant(c, ctx) {
				flat(c.Children)
				continue
			}
			res = append(res, c)
		}
	}
	flat(children)
	return res
}

func (os *optState) redundant(c *ir.Node, ctx optCtx) bool {
	switch c.Type {
	case ir.LinkType:
		return ctx.inLink
	case ir.ItalicType:
		return ctx.inItalic
	case ir.BoldType:
		return ctx.inBold
	}
	return false
}

// merge combines adjacent children of the given kind left to right.
// Each merged node is optimized again before the scan continues, since
// merging can expose new flattening or merging inside it.
func (os *optState) merge(n *ir.Node, kind ir.Type, ctx optCtx) {
	res := make([]*ir.Node, 0, len(n.Children))
	for _, c := range n.Children {
		last := len(res) - 1
		if last >= 0 && res[last].Type == kind && c.Type == kind {
			res[last] = os.mergePair(res[last], c, ctx)
			continue
		}
		res = append(res, c)
	}
	n.Children = res
}

func (os *optState) mergePair(a, b *ir.Node, ctx optCtx) *ir.Node {
	if a.Type == ir.TextType {
		return ir.Text(a.String + b.String)
	}
	kids := make([]*ir.Node, 0, len(a.Children)+len(b.Children))
	kids = append(kids, a.Children...)
	kids = append(kids, b.Children...)
	var m *ir.Node
	switch a.Type {
	case ir.ItalicType:
		m = ir.Italic(kids...)
	case ir.BoldType:
		m = ir.Bold(kids...)
	default:
		panic("type")
	}
	return os.optimize(m, ctx)
}
