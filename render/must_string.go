package render

import (
	"bytes"

	"github.com/wikitext-format/go-wikitext/ir"
)

func MustString(node *ir.Node, opts ...RenderOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Render(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
