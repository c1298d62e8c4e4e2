package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/optimize"
	"github.com/wikitext-format/go-wikitext/parse"
)

// forEachArg reads the file args ("-" or no args means stdin), splits
// the contents into documents on "\n---\n" separators, and calls fn
// with each document's bytes and its position in the stream.
func forEachArg(args []string, fn func(d []byte, i, n int) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var docs [][]byte
	for _, arg := range args {
		in, err := readArg(arg)
		if err != nil {
			return err
		}
		docs = append(docs, bytes.Split(in, []byte("\n---\n"))...)
	}
	n := len(docs)
	for i, d := range docs {
		if err := fn(d, i, n); err != nil {
			return err
		}
	}
	return nil
}

func forEachDoc(args []string, raw bool, fn func(doc *ir.Node, i, n int) error) error {
	return forEachArg(args, func(d []byte, i, n int) error {
		doc := parse.Parse(d)
		if !raw {
			optimize.Optimize(doc)
		}
		return fn(doc, i, n)
	})
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}
