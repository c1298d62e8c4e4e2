// Package render renders IR document trees to the output formats.
//
// # Usage
//
//	node := parse.Parse(input)
//	err := render.Render(node, os.Stdout, render.RenderFormat(format.HTMLFormat))
//
//	// One-liner for trusted trees
//	s := render.MustString(node, render.RenderFormat(format.MarkdownFormat))
//
// Rendering never alters text content: literal text passes through
// unchanged in every format. Link targets are resolved to hrefs via
// ir.ParseRef at render time.
//
// # Related Packages
//
//   - github.com/wikitext-format/go-wikitext/ir - IR representation
//   - github.com/wikitext-format/go-wikitext/parse - Parse markup to IR
//   - github.com/wikitext-format/go-wikitext/format - Output format enum
package render
