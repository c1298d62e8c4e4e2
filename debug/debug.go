package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan     bool
	Parse    bool
	Optimize bool
	Eval     bool
	Build    bool
	LSP      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("WIKITEXT_DEBUG_SCAN")
	d.Parse = boolEnv("WIKITEXT_DEBUG_PARSE")
	d.Optimize = boolEnv("WIKITEXT_DEBUG_OPTIMIZE")
	d.Eval = boolEnv("WIKITEXT_DEBUG_EVAL")
	d.Build = boolEnv("WIKITEXT_DEBUG_BUILD")
	d.LSP = boolEnv("WIKITEXT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Optimize() bool {
	return d.Optimize
}
func Eval() bool {
	return d.Eval
}
func Build() bool {
	return d.Build
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
