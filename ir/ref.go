package ir

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type RefKind int

const (
	InternalRef RefKind = iota
	ExternalRef
)

func (k RefKind) String() string {
	if k == ExternalRef {
		return "external"
	}
	return "internal"
}

func (k RefKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *RefKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "internal":
		*k = InternalRef
	case "external":
		*k = ExternalRef
	default:
		return fmt.Errorf("unrecognized ref kind %q", d)
	}
	return nil
}

// Ref is a link target interpreted for rendering. External targets
// carry the full URL in Site; internal targets split into a Page name
// and an optional Anchor fragment.
type Ref struct {
	Kind   RefKind
	Site   string
	Page   string
	Anchor string
}

// ParseRef interprets a link target. A target starting with a URL
// scheme, one or more lowercase ASCII letters followed by "://", is
// external. Anything else names a page, optionally with a "#fragment"
// suffix.
func ParseRef(target string) Ref {
	if isExternal(target) {
		return Ref{Kind: ExternalRef, Site: target}
	}
	page, anchor, _ := strings.Cut(target, "#")
	return Ref{Kind: InternalRef, Page: page, Anchor: anchor}
}

func isExternal(target string) bool {
	i := strings.Index(target, "://")
	if i < 1 {
		return false
	}
	for j := 0; j < i; j++ {
		if target[j] < 'a' || target[j] > 'z' {
			return false
		}
	}
	return true
}

// String returns the href form of the reference. External references
// pass through unchanged. Internal references become relative paths:
// the page with its first rune upper-cased and spaces replaced by
// underscores, the anchor appended unchanged.
func (r Ref) String() string {
	if r.Kind == ExternalRef {
		return r.Site
	}
	page := r.Page
	if page != "" {
		rn, size := utf8.DecodeRuneInString(page)
		page = string(unicode.ToUpper(rn)) + page[size:]
		page = strings.ReplaceAll(page, " ", "_")
	}
	res := "./" + page
	if r.Anchor != "" {
		res += "#" + r.Anchor
	}
	return res
}

// Ref interprets y's link target. It panics if y is not a link.
func (y *Node) Ref() Ref {
	if y.Type != LinkType {
		panic("ir: Ref called on non-link node")
	}
	return ParseRef(y.Target)
}
