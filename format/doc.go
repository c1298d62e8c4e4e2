// Package format enumerates the output formats a document tree can be
// rendered to.
//
// # Usage
//
//	f, err := format.ParseFormat("html")
//	if err != nil { ... }
//	render.Render(node, w, render.RenderFormat(f))
//
// # Related Packages
//
//   - github.com/wikitext-format/go-wikitext/parse - Parse markup to IR
//   - github.com/wikitext-format/go-wikitext/render - Render IR per format
package format
