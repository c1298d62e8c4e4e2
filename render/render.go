package render

import (
	"io"

	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/ir"
)

type RenderState struct {
	format format.Format
	join   string

	Color func(ir.Type, ColorAttr, string) string
}

// Render writes node to w in the state's format, text by default.
// Text content passes through unchanged in every format; no escaping
// is applied.
func Render(node *ir.Node, w io.Writer, opts ...RenderOption) error {
	rs := &RenderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return render(node, w, rs)
}

func render(node *ir.Node, w io.Writer, rs *RenderState) error {
	switch node.Type {
	case ir.TextType:
		return renderText(node, w, rs)
	case ir.SentenceType:
		return renderSentence(node, w, rs)
	case ir.BoldType:
		return renderBold(node, w, rs)
	case ir.ItalicType:
		return renderItalic(node, w, rs)
	case ir.LinkType:
		return renderLink(node, w, rs)
	default:
		panic("type")
	}
}

func renderText(node *ir.Node, w io.Writer, rs *RenderState) error {
	v := node.String
	if rs.Color != nil {
		v = rs.Color(ir.TextType, ValueColor, v)
	}
	return writeString(w, v)
}

func renderSentence(node *ir.Node, w io.Writer, rs *RenderState) error {
	if rs.format.IsHTML() {
		return renderSpan(node, w, rs, `<span class="sentence">`, "</span>")
	}
	return renderChildren(node, w, rs)
}

func renderBold(node *ir.Node, w io.Writer, rs *RenderState) error {
	switch rs.format {
	case format.TextFormat:
		return renderChildren(node, w, rs)
	case format.HTMLFormat:
		return renderSpan(node, w, rs, "<b>", "</b>")
	case format.LaTeXFormat:
		return renderSpan(node, w, rs, `\textbf{`, "}")
	case format.MarkdownFormat:
		return renderSpan(node, w, rs, "**", "**")
	default:
		panic("format")
	}
}

func renderItalic(node *ir.Node, w io.Writer, rs *RenderState) error {
	switch rs.format {
	case format.TextFormat:
		return renderChildren(node, w, rs)
	case format.HTMLFormat:
		return renderSpan(node, w, rs, "<i>", "</i>")
	case format.LaTeXFormat:
		return renderSpan(node, w, rs, `\textit{`, "}")
	case format.MarkdownFormat:
		return renderSpan(node, w, rs, "*", "*")
	default:
		panic("format")
	}
}

// renderLink resolves the target reference at render time. The text
// format renders the display content only.
func renderLink(node *ir.Node, w io.Writer, rs *RenderState) error {
	switch rs.format {
	case format.TextFormat:
		return renderChildren(node, w, rs)
	case format.HTMLFormat:
		ref := node.Ref()
		class := "link"
		if ref.Kind == ir.ExternalRef {
			class = "link external"
		}
		open := `<a class="` + class + `" href="` + ref.String() + `">`
		return renderSpan(node, w, rs, open, "</a>")
	case format.LaTeXFormat:
		return renderSpan(node, w, rs, `\href{`+node.Ref().String()+`}{`, "}")
	case format.MarkdownFormat:
		return renderSpan(node, w, rs, "[", "]("+node.Ref().String()+")")
	default:
		panic("format")
	}
}

func renderSpan(node *ir.Node, w io.Writer, rs *RenderState, open, close string) error {
	if err := writeMarkup(node, w, rs, open); err != nil {
		return err
	}
	if err := renderChildren(node, w, rs); err != nil {
		return err
	}
	return writeMarkup(node, w, rs, close)
}

func renderChildren(node *ir.Node, w io.Writer, rs *RenderState) error {
	for i, c := range node.Children {
		if i > 0 && rs.join != "" {
			sep := rs.join
			if rs.Color != nil {
				sep = rs.Color(node.Type, SepColor, sep)
			}
			if err := writeString(w, sep); err != nil {
				return err
			}
		}
		if err := render(c, w, rs); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkup(node *ir.Node, w io.Writer, rs *RenderState, s string) error {
	if rs.Color != nil {
		s = rs.Color(node.Type, MarkupColor, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
