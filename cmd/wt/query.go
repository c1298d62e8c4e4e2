package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/eval"
	"github.com/wikitext-format/go-wikitext/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Q == "" {
		return fmt.Errorf("%w: query requires -q <expr>", cli.ErrUsage)
	}
	return forEachDoc(args, false, func(doc *ir.Node, i, n int) error {
		res, err := eval.Query(doc, cfg.Q, cfg.Env)
		if err != nil {
			return fmt.Errorf("error querying document %d: %w", i, err)
		}
		return printResult(cc.Out, res)
	})
}

func printResult(w io.Writer, res any) error {
	switch x := res.(type) {
	case string:
		_, err := fmt.Fprintln(w, x)
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	default:
		d, err := json.MarshalIndent(x, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	}
}

// envFunc sets a 'key=val' argument in env, parsing val as YAML and
// descending dotted keys into nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
