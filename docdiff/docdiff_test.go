package docdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/wikitext-format/go-wikitext/parse"
	"github.com/wikitext-format/go-wikitext/summary"
)

func TestDiffText(t *testing.T) {
	from := parse.Parse([]byte("a <b>bold</b> day"))
	to := parse.Parse([]byte("a ''bold'' night"))
	want := []diffpatch.Diff{
		{Type: diffpatch.DiffEqual, Text: "a bold "},
		{Type: diffpatch.DiffDelete, Text: "day"},
		{Type: diffpatch.DiffInsert, Text: "night"},
	}
	got := DiffText(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffText() mismatch (-want +got):\n%s", diff)
	}
}

// Equal plus insert segments rebuild the target text, equal plus
// delete the source text.
func TestDiffTextRebuilds(t *testing.T) {
	pairs := [][2]string{
		{"", "anything at all"},
		{"same ''text''", "same text"},
		{"[[a|one]] two", "three [[b|four]]"},
		{"shared prefix then δ", "shared prefix then ω"},
	}
	for _, pair := range pairs {
		from, to := parse.Parse([]byte(pair[0])), parse.Parse([]byte(pair[1]))
		var fromText, toText strings.Builder
		for _, d := range DiffText(from, to) {
			if d.Type != diffpatch.DiffInsert {
				fromText.WriteString(d.Text)
			}
			if d.Type != diffpatch.DiffDelete {
				toText.WriteString(d.Text)
			}
		}
		if fromText.String() != from.Text() {
			t.Errorf("%q: diff loses source text: %q", pair[0], fromText.String())
		}
		if toText.String() != to.Text() {
			t.Errorf("%q: diff loses target text: %q", pair[1], toText.String())
		}
	}
}

func TestPrettyText(t *testing.T) {
	diffs := []diffpatch.Diff{
		{Type: diffpatch.DiffEqual, Text: "keep "},
		{Type: diffpatch.DiffDelete, Text: "old"},
		{Type: diffpatch.DiffInsert, Text: "new"},
	}
	got := PrettyText(diffs)
	for _, part := range []string{"keep ", "old", "new"} {
		if !strings.Contains(got, part) {
			t.Errorf("pretty diff lost %q: %q", part, got)
		}
	}
}

func TestMergePatchRoundTrip(t *testing.T) {
	from := parse.Parse([]byte("intro [[go tools|docs]] <b>note</b>"))
	to := parse.Parse([]byte("intro [[go tools|manuals]] ''note''"))

	patch, err := MergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ApplyMergePatch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := summary.Summarize(to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patched summary mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePatchIdentical(t *testing.T) {
	doc := parse.Parse([]byte("same [[x|y]]"))
	patch, err := MergePatch(doc, doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(patch) != "{}" {
		t.Errorf("got %s", patch)
	}
}

func TestApplyMergePatchBad(t *testing.T) {
	doc := parse.Parse([]byte("x"))
	if _, err := ApplyMergePatch(doc, []byte("{")); err == nil {
		t.Error("truncated patch applied")
	}
}
