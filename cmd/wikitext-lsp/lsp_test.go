package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/wikitext-format/go-wikitext/token"
)

func testDoc(t *testing.T, content string) *document {
	t.Helper()
	ds := &documentStore{docs: make(map[string]*document)}
	return ds.put("file:///t.wiki", content, 1)
}

func TestUnterminated(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{in: "plain text"},
		{in: "<b>a</b> '''b''' [[c]]"},
		{in: "<b>x", want: []string{"bold tag"}},
		{in: "''a<b>b", want: []string{"italic quotes", "bold tag"}},
		// The inner quotes open a new span: only the innermost
		// construct can be closed.
		{in: "''a<b>b''", want: []string{"italic quotes", "bold tag", "italic quotes"}},
		{in: "[[a|b", want: []string{"link"}},
		{in: "'''''x", want: []string{"bold italic quotes"}},
	} {
		var got []string
		for _, od := range unterminated(token.Scan(nil, []byte(tc.in))) {
			got = append(got, od.what)
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("unterminated(%q): %s", tc.in, d)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	doc := testDoc(t, "ab <b>x\n[[y")
	want := []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 3},
				End:   protocol.Position{Line: 0, Character: 6},
			},
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   "wikitext",
			Message:  "unterminated bold tag closes at end of document",
		},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 0},
				End:   protocol.Position{Line: 1, Character: 2},
			},
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   "wikitext",
			Message:  "unterminated link closes at end of document",
		},
	}
	s := &Server{}
	if d := cmp.Diff(want, s.validateDocument(doc)); d != "" {
		t.Error(d)
	}
}

func TestTokenPositions(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []protocol.Position
	}{
		{
			in: "''a\n<b>",
			want: []protocol.Position{
				{Line: 0, Character: 0},
				{Line: 0, Character: 2},
				{Line: 1, Character: 0},
			},
		},
		{
			// Characters count runes.
			in: "é''",
			want: []protocol.Position{
				{Line: 0, Character: 0},
				{Line: 0, Character: 1},
			},
		},
	} {
		doc := testDoc(t, tc.in)
		if d := cmp.Diff(tc.want, doc.positions); d != "" {
			t.Errorf("positions(%q): %s", tc.in, d)
		}
	}
}

func TestLineColToOffset(t *testing.T) {
	for _, tc := range []struct {
		content   string
		line, col int
		want      int
	}{
		{content: "ab\ncd\n", line: 0, col: 0, want: 0},
		{content: "ab\ncd\n", line: 0, col: 1, want: 1},
		{content: "ab\ncd\n", line: 1, col: 0, want: 3},
		{content: "ab\ncd\n", line: 1, col: 2, want: 5},
		{content: "ab\ncd\n", line: 2, col: 0, want: 6},
		{content: "ab\ncd\n", line: 9, col: 9, want: 6},
		{content: "éx", line: 0, col: 1, want: 2},
	} {
		got := lineColToOffset(tc.content, tc.line, tc.col)
		if got != tc.want {
			t.Errorf("lineColToOffset(%q, %d, %d) = %d, want %d",
				tc.content, tc.line, tc.col, got, tc.want)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []uint32
	}{
		{
			in: "''a'' [[b|c]]",
			want: []uint32{
				0, 0, 2, 0, 0, // '' keyword
				0, 3, 2, 0, 0, // '' keyword
				0, 3, 2, 1, 0, // [[ operator
				0, 3, 1, 1, 0, // | operator
				0, 2, 2, 1, 0, // ]] operator
			},
		},
		{
			// Only the first pipe splits a link.
			in: "[[a|b|c]]",
			want: []uint32{
				0, 0, 2, 1, 0,
				0, 3, 1, 1, 0,
				0, 4, 2, 1, 0,
			},
		},
		{
			in: "''a\nb'' x",
			want: []uint32{
				0, 0, 2, 0, 0,
				1, 1, 2, 0, 0,
			},
		},
		{
			// A close tag with nothing open is literal text.
			in:   "x </b> y",
			want: []uint32{},
		},
		{
			// A pipe outside a link is literal text.
			in:   "a|b",
			want: []uint32{},
		},
	} {
		doc := testDoc(t, tc.in)
		got := encodeSemanticTokens(semanticTokenList(doc))
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("semantic tokens(%q): %s", tc.in, d)
		}
	}
}

func TestSemanticTokensFiltered(t *testing.T) {
	doc := testDoc(t, "''a''\n''b''\n''c''")
	list := semanticTokenList(doc)
	if len(list) != 6 {
		t.Fatalf("got %d tokens, want 6", len(list))
	}
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 1, Character: 5},
	}
	var filtered []tokenInfo
	for _, ti := range list {
		if inRange(ti.pos, r) {
			filtered = append(filtered, ti)
		}
	}
	want := []uint32{
		1, 0, 2, 0, 0,
		0, 3, 2, 0, 0,
	}
	if d := cmp.Diff(want, encodeSemanticTokens(filtered)); d != "" {
		t.Error(d)
	}
}

func TestLinkSpanAt(t *testing.T) {
	doc := testDoc(t, "a [[b [[c]] d]] e")
	for _, tc := range []struct {
		off        int
		start, end int
		none       bool
	}{
		{off: 8, start: 6, end: 11},  // inside the nested link
		{off: 4, start: 2, end: 15},  // inside the outer target only
		{off: 14, start: 2, end: 15}, // on the outer close delimiter
		{off: 0, none: true},
		{off: 16, none: true},
	} {
		sp := doc.linkSpanAt(tc.off)
		if tc.none {
			if sp != nil {
				t.Errorf("linkSpanAt(%d) = [%d,%d), want none", tc.off, sp.start, sp.end)
			}
			continue
		}
		if sp == nil {
			t.Errorf("linkSpanAt(%d) = none, want [%d,%d)", tc.off, tc.start, tc.end)
			continue
		}
		if sp.start != tc.start || sp.end != tc.end {
			t.Errorf("linkSpanAt(%d) = [%d,%d), want [%d,%d)",
				tc.off, sp.start, sp.end, tc.start, tc.end)
		}
	}

	open := testDoc(t, "x [[a")
	sp := open.linkSpanAt(3)
	if sp == nil || sp.close != -1 || sp.end != len(open.content) {
		t.Errorf("open link span = %+v", sp)
	}
}

func TestBuildHoverText(t *testing.T) {
	for _, tc := range []struct {
		in    string
		parts []string
	}{
		{
			in: "[[dog food#bowl|kibble]]",
			parts: []string{
				"**Link:** internal",
				"**Target:** `dog food#bowl`",
				"**Page:** `dog food`",
				"**Anchor:** `bowl`",
				"**Href:** `./Dog_food#bowl`",
				"**Text:** kibble",
			},
		},
		{
			in: "[[https://x.io/a|docs]]",
			parts: []string{
				"**Link:** external",
				"**Target:** `https://x.io/a`",
				"**Site:** `https://x.io/a`",
				"**Href:** `https://x.io/a`",
				"**Text:** docs",
			},
		},
		{
			in: "[[plain]]",
			parts: []string{
				"**Link:** internal",
				"**Target:** `plain`",
				"**Page:** `plain`",
				"**Href:** `./Plain`",
			},
		},
		{
			in: "[[#frag]]",
			parts: []string{
				"**Link:** internal",
				"**Target:** `#frag`",
				"**Anchor:** `frag`",
				"**Href:** `./#frag`",
			},
		},
		{
			// Empty target: the link contributes only display text.
			in: "[[|alias]]",
		},
	} {
		doc := testDoc(t, tc.in)
		span := doc.linkSpanAt(2)
		if span == nil {
			t.Fatalf("no link span in %q", tc.in)
		}
		got := buildHoverText(doc, span)
		want := strings.Join(tc.parts, "\n\n")
		if got != want {
			t.Errorf("hover(%q) = %q, want %q", tc.in, got, want)
		}
	}
}
