package main

import (
	"encoding/json"

	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/summary"
)

func summaryRun(cfg *SummaryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Summary.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDoc(args, false, func(doc *ir.Node, i, n int) error {
		d, err := json.MarshalIndent(summary.Summarize(doc), "", "  ")
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
		if i != n-1 {
			_, err := cc.Out.Write([]byte("---\n"))
			return err
		}
		return nil
	})
}
