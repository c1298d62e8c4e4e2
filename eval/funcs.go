package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/render"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("html", func(params ...any) (any, error) {
			return render.MustString(doc, render.RenderFormat(format.HTMLFormat)), nil
		},
			new(func() string)),
		expr.Function("markdown", func(params ...any) (any, error) {
			return render.MustString(doc, render.RenderFormat(format.MarkdownFormat)), nil
		},
			new(func() string)),
		expr.Function("latex", func(params ...any) (any, error) {
			return render.MustString(doc, render.RenderFormat(format.LaTeXFormat)), nil
		},
			new(func() string)),
		expr.Function("count", func(params ...any) (any, error) {
			t, err := parseKind(params[0].(string))
			if err != nil {
				return nil, err
			}
			return len(doc.Matching(func(n *ir.Node) bool { return n.Type == t })), nil
		},
			new(func(string) int)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func parseKind(v string) (ir.Type, error) {
	for _, t := range ir.Types() {
		if strings.EqualFold(t.String(), v) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unrecognized node kind %q", v)
}
