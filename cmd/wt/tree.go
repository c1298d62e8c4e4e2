package main

import (
	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/render"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.MainConfig.colorOpts(cc.Out)
	return forEachDoc(args, cfg.Raw, func(doc *ir.Node, i, n int) error {
		if err := render.Dump(doc, cc.Out, opts...); err != nil {
			return err
		}
		if i != n-1 {
			_, err := cc.Out.Write([]byte("---\n"))
			return err
		}
		return nil
	})
}
