package main

import (
	"bytes"
	"io"

	"github.com/muesli/reflow/wordwrap"
	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/render"
)

func renderRun(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.MainConfig.renderOpts(cc.Out)
	width := 0
	if cfg.MainConfig.format().IsText() {
		width = cfg.wrapWidth(cc.Out)
	}
	return forEachDoc(args, cfg.Raw, func(doc *ir.Node, i, n int) error {
		if err := renderDoc(cc.Out, doc, width, opts...); err != nil {
			return err
		}
		if i != n-1 {
			// doc separator
			_, err := cc.Out.Write([]byte("\n---\n"))
			return err
		}
		_, err := cc.Out.Write([]byte{'\n'})
		return err
	})
}

func renderDoc(w io.Writer, doc *ir.Node, width int, opts ...render.RenderOption) error {
	if width <= 0 {
		return render.Render(doc, w, opts...)
	}
	buf := bytes.NewBuffer(nil)
	if err := render.Render(doc, buf, opts...); err != nil {
		return err
	}
	_, err := io.WriteString(w, wordwrap.String(buf.String(), width))
	return err
}
