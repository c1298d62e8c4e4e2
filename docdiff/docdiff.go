package docdiff

import (
	"encoding/json"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/summary"
)

// DiffText diffs the plain text renderings of two documents.
func DiffText(from, to *ir.Node) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	return diffCfg.DiffMainRunes([]rune(from.Text()), []rune(to.Text()), false)
}

var (
	insColor = color.New(color.FgGreen).SprintFunc()
	delColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// PrettyText renders diffs for a terminal, insertions green and
// deletions red struck through.
func PrettyText(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString(insColor(d.Text))
		case diffpatch.DiffDelete:
			sb.WriteString(delColor(d.Text))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// MergePatch computes an RFC 7386 merge patch between the summaries of
// two documents.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	fd, err := json.Marshal(summary.Summarize(from))
	if err != nil {
		return nil, err
	}
	td, err := json.Marshal(summary.Summarize(to))
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fd, td)
}

// ApplyMergePatch applies a merge patch to doc's summary.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*summary.Summary, error) {
	d, err := json.Marshal(summary.Summarize(doc))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	res := &summary.Summary{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, err
	}
	return res, nil
}
