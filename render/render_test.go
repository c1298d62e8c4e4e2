package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/ir"
)

var renderTree = ir.Sentence(
	ir.Text("a "),
	ir.Bold(ir.Text("b"), ir.Italic(ir.Text("c"))),
	ir.Text(" "),
	ir.Link("go tools", ir.Text("docs")),
)

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		f    format.Format
		want string
	}{
		{format.TextFormat, "a bc docs"},
		{format.HTMLFormat, `<span class="sentence">a <b>b<i>c</i></b> <a class="link" href="./Go_tools">docs</a></span>`},
		{format.LaTeXFormat, `a \textbf{b\textit{c}} \href{./Go_tools}{docs}`},
		{format.MarkdownFormat, `a **b*c*** [docs](./Go_tools)`},
	}
	for _, tst := range tests {
		t.Run(tst.f.String(), func(t *testing.T) {
			if got := MustString(renderTree, RenderFormat(tst.f)); got != tst.want {
				t.Errorf("got %s, want %s", got, tst.want)
			}
		})
	}
}

// The zero option set renders plain text.
func TestRenderDefault(t *testing.T) {
	if got := MustString(renderTree); got != "a bc docs" {
		t.Errorf("got %q", got)
	}
}

func TestRenderJoin(t *testing.T) {
	n := ir.Sentence(ir.Text("a"), ir.Text("b"), ir.Text("c"))
	if got := MustString(n, Join(", ")); got != "a, b, c" {
		t.Errorf("got %q", got)
	}
}

func TestRenderExternalLink(t *testing.T) {
	n := ir.Link("https://go.dev", ir.Text("Go"))
	want := `<a class="link external" href="https://go.dev">Go</a>`
	if got := MustString(n, RenderFormat(format.HTMLFormat)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDump(t *testing.T) {
	n := ir.Sentence(
		ir.Text("a"),
		ir.Bold(ir.Text("b")),
		ir.Link("p", ir.Text("d")),
	)
	var buf bytes.Buffer
	if err := Dump(n, &buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`Sentence`,
		`  Text "a"`,
		`  Bold`,
		`    Text "b"`,
		`  Link "p"`,
		`    Text "d"`,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	for _, payload := range []string{"plain", "100%", "a%sb"} {
		got := c.Color(ir.TextType, ValueColor, payload)
		if !strings.Contains(got, payload) {
			t.Errorf("payload %q mangled: %q", payload, got)
		}
	}
	// unmapped attributes fall back to the identity default
	if got := c.Color(ir.TextType, TargetColor, "x"); got != "x" {
		t.Errorf("default color changed %q", got)
	}

	out := MustString(renderTree, RenderColors(c))
	for _, payload := range []string{"a ", "b", "c", "docs"} {
		if !strings.Contains(out, payload) {
			t.Errorf("colored render lost %q: %q", payload, out)
		}
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(); !f.IsText() {
		t.Errorf("zero opts: %s", f)
	}
	if f := FormatFromOpts(RenderFormat(format.LaTeXFormat)); !f.IsLaTeX() {
		t.Errorf("got %s", f)
	}
}
