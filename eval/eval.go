package eval

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/wikitext-format/go-wikitext/debug"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/summary"
)

// Env holds caller variables for a query. Entries shadow the derived
// document bindings on name collision.
type Env map[string]any

// Compile compiles a query against doc. The program can be run many
// times with different environments.
func Compile(doc *ir.Node, src string) (*vm.Program, error) {
	return expr.Compile(src, exprOpts(doc)...)
}

// Run runs a compiled query with env merged over doc's bindings.
func Run(prg *vm.Program, doc *ir.Node, env Env) (any, error) {
	return expr.Run(prg, envOf(doc, env))
}

// Query compiles and runs src against doc.
func Query(doc *ir.Node, src string, env Env) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %v\n", src, doc)
	}
	prg, err := Compile(doc, src)
	if err != nil {
		return nil, err
	}
	return Run(prg, doc, env)
}

// envOf derives the query bindings of doc: its plain text, links,
// formatted span texts, and the whole summary for structured access.
func envOf(doc *ir.Node, env Env) Env {
	sum := summary.Summarize(doc)
	res := Env{
		"text":    sum.Text,
		"links":   sum.Links,
		"bold":    []string(nil),
		"italic":  []string(nil),
		"summary": sum,
	}
	if sum.Formatting != nil {
		res["bold"] = sum.Formatting.Bold
		res["italic"] = sum.Formatting.Italic
	}
	for k, v := range env {
		res[k] = v
	}
	return res
}
