package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/wikitext-format/go-wikitext/ir"
)

// Dump writes an indented tree view of node to w, one node per line,
// for debugging. Text nodes show their quoted literal; links show
// their quoted target.
func Dump(node *ir.Node, w io.Writer, opts ...RenderOption) error {
	rs := &RenderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return dump(node, w, rs, 0)
}

func dump(node *ir.Node, w io.Writer, rs *RenderState, depth int) error {
	kind := node.Type.String()
	if rs.Color != nil {
		kind = rs.Color(node.Type, KindColor, kind)
	}
	line := strings.Repeat("  ", depth) + kind
	switch node.Type {
	case ir.TextType:
		v := strconv.Quote(node.String)
		if rs.Color != nil {
			v = rs.Color(node.Type, ValueColor, v)
		}
		line += " " + v
	case ir.LinkType:
		v := strconv.Quote(node.Target)
		if rs.Color != nil {
			v = rs.Color(node.Type, TargetColor, v)
		}
		line += " " + v
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	for _, c := range node.Children {
		if err := dump(c, w, rs, depth+1); err != nil {
			return err
		}
	}
	return nil
}
