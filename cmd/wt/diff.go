package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/docdiff"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/optimize"
	"github.com/wikitext-format/go-wikitext/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadDoc(args[0])
	if err != nil {
		return err
	}
	to, err := loadDoc(args[1])
	if err != nil {
		return err
	}
	if cfg.Sum {
		patch, err := docdiff.MergePatch(from, to)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", patch)
		return err
	}
	if _, err := io.WriteString(cc.Out, docdiff.PrettyText(docdiff.DiffText(from, to))); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte{'\n'})
	return err
}

func loadDoc(arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	return optimize.Optimize(parse.Parse(d)), nil
}
