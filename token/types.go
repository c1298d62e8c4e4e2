package token

import (
	"fmt"
)

type TokenType int

const (
	TText = iota
	TQuote2
	TQuote3
	TQuote4
	TQuote5
	TBoldOpen
	TBoldClose
	TItalicOpen
	TItalicClose
	TLinkOpen
	TLinkClose
	TPipe
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TText:        "TText",
		TQuote2:      "TQuote2",
		TQuote3:      "TQuote3",
		TQuote4:      "TQuote4",
		TQuote5:      "TQuote5",
		TBoldOpen:    "TBoldOpen",
		TBoldClose:   "TBoldClose",
		TItalicOpen:  "TItalicOpen",
		TItalicClose: "TItalicClose",
		TLinkOpen:    "TLinkOpen",
		TLinkClose:   "TLinkClose",
		TPipe:        "TPipe",
	}[t]
}

// IsQuote reports whether t is one of the apostrophe run tokens.
func (t TokenType) IsQuote() bool {
	return t >= TQuote2 && t <= TQuote5
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// End is the byte offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
