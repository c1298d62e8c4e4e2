// Package ir provides the intermediate representation (IR) for parsed
// wiki markup documents.
//
// # Overview
//
// A document is a tree of nodes. The parser produces trees rooted at a
// Sentence node; the optimizer rewrites them; the renderers walk them.
// The IR carries no position information, making it purely semantic.
//
// # Node Structure
//
// Node is a recursive tagged union: a single struct covers all kinds,
// and which fields are meaningful depends on the Type.
//
//   - TextType: a literal text span, in String. Leaf.
//   - ItalicType, BoldType: formatting spans over Children.
//   - LinkType: Target plus display Children.
//   - SentenceType: the document root over Children.
//
// Each node maintains parent bookkeeping (Parent, ParentIndex),
// allowing navigation up the tree. Constructors and Append keep the
// bookkeeping consistent; code which rearranges Children directly must
// call Reindex.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.Sentence(
//	    ir.Text("see "),
//	    ir.Link("go tools#fmt", ir.Bold(ir.Text("the tools"))),
//	)
//
// # Link References
//
// Link targets are interpreted by ParseRef: targets with a URL scheme
// prefix are external, everything else names a page with an optional
// "#fragment" anchor. Ref.String renders the href form used by the
// renderers. Interpretation happens at render time; the parser stores
// targets verbatim.
//
// # Comparison and Hashing
//
// Nodes can be compared for equality and totally ordered:
//
//	equal := ir.Equal(a, b)
//
// Nodes can be hashed (useful for caching, deduplication):
//
//	hash := node.Hash()
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes
// from multiple goroutines, you must synchronize access yourself or
// clone nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/wikitext-format/go-wikitext/parse - Parses markup into IR nodes
//   - github.com/wikitext-format/go-wikitext/optimize - Normalizes IR trees
//   - github.com/wikitext-format/go-wikitext/render - Renders IR nodes to output formats
//   - github.com/wikitext-format/go-wikitext/summary - Summarizes IR trees
package ir
