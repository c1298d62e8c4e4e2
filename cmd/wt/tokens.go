package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachArg(args, func(d []byte, i, n int) error {
		toks := token.Scan(nil, d)
		for j := range toks {
			tok := &toks[j]
			line, col := tok.Pos.LineCol()
			if _, err := fmt.Fprintf(cc.Out, "%d:%d\t%s\t%q\n", line+1, col+1, tok.Type, tok.Bytes); err != nil {
				return err
			}
		}
		if i != n-1 {
			_, err := cc.Out.Write([]byte("---\n"))
			return err
		}
		return nil
	})
}
