package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/wikitext-format/go-wikitext/ir"
)

// ExpandEnv rewrites doc in place, replacing $[expr] segments in text
// nodes and link targets with their evaluated results. Unlike queries,
// expansion sees only env, not the document's own bindings.
func ExpandEnv(doc *ir.Node, env Env) error {
	return doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch n.Type {
		case ir.TextType:
			v, err := ExpandString(n.String, env)
			if err != nil {
				return false, err
			}
			n.String = v
		case ir.LinkType:
			v, err := ExpandString(n.Target, env)
			if err != nil {
				return false, err
			}
			n.Target = v
		}
		return true, nil
	})
}

// ExpandString replaces each $[expr] segment of v with the result of
// evaluating expr against env. Inside a segment a backslash escapes
// the next character, so \] is a literal bracket.
func ExpandString(v string, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var out strings.Builder
	i, n := 0, len(v)
	for i < n {
		j := strings.Index(v[i:], "$[")
		if j < 0 {
			out.WriteString(v[i:])
			break
		}
		out.WriteString(v[i : i+j])
		i += j + 2

		var key []byte
		closed := false
		for i < n {
			c := v[i]
			if c == '\\' && i+1 < n {
				key = append(key, v[i+1])
				i += 2
				continue
			}
			if c == ']' {
				i++
				closed = true
				break
			}
			key = append(key, c)
			i++
		}
		if !closed {
			return "", fmt.Errorf("unterminated $[ segment in %q", v)
		}

		res, err := evalString(string(key), env)
		if err != nil {
			return "", err
		}
		out.WriteString(res)
	}
	return out.String(), nil
}

func evalString(src string, env Env) (string, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return "", err
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return "", err
	}
	switch v := res.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}
