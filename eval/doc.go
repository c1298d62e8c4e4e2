// Package eval provides expression queries over wiki documents.
//
// A query is an expr program evaluated against bindings derived from
// the document summary (text, links, bold, italic, summary) plus
// rendering helper functions (html, markdown, latex, count, getenv).
// ExpandEnv additionally rewrites $[expr] segments inside a document
// from a caller environment.
//
// # Related Packages
//
//   - github.com/wikitext-format/go-wikitext/summary - Derived bindings
//   - github.com/wikitext-format/go-wikitext/render - Rendering helpers
package eval
