// Package docdiff compares wiki documents.
//
// # Usage
//
//	// Character diff of the plain text renderings
//	diffs := docdiff.DiffText(oldDoc, newDoc)
//	fmt.Print(docdiff.PrettyText(diffs))
//
//	// Structural change as an RFC 7386 merge patch over summaries
//	patch, err := docdiff.MergePatch(oldDoc, newDoc)
//	sum, err := docdiff.ApplyMergePatch(oldDoc, patch)
//
// # Related Packages
//
//   - github.com/wikitext-format/go-wikitext/ir - Document trees
//   - github.com/wikitext-format/go-wikitext/summary - Patched representation
package docdiff
