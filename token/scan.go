package token

import (
	"bytes"
)

var (
	boldOpen    = []byte("<b>")
	boldClose   = []byte("</b>")
	italicOpen  = []byte("<i>")
	italicClose = []byte("</i>")
	linkOpen    = []byte("[[")
	linkClose   = []byte("]]")
)

// Scan appends the tokens of src to dst and returns the result. It
// cannot fail: any byte which does not start a markup delimiter
// extends the pending TText token, so the concatenation of all token
// bytes reproduces src exactly.
//
// Apostrophe runs match longest first. A run of 6 or more matches
// TQuote5 and the remainder is scanned again, so a lone leftover
// apostrophe is literal text.
func Scan(dst []Token, src []byte) []Token {
	pd := &PosDoc{d: src}
	n := len(src)
	i, ts := 0, 0
	flush := func(end int) {
		if ts < end {
			dst = append(dst, Token{Type: TText, Pos: pd.Pos(ts), Bytes: src[ts:end]})
		}
	}
	for i < n {
		var (
			tt    TokenType
			width int
		)
		switch src[i] {
		case '\'':
			run := 1
			for i+run < n && src[i+run] == '\'' {
				run++
			}
			if run < 2 {
				i++
				continue
			}
			switch run {
			case 2:
				tt, width = TQuote2, 2
			case 3:
				tt, width = TQuote3, 3
			case 4:
				tt, width = TQuote4, 4
			default:
				tt, width = TQuote5, 5
			}
		case '<':
			switch {
			case bytes.HasPrefix(src[i:], boldOpen):
				tt, width = TBoldOpen, len(boldOpen)
			case bytes.HasPrefix(src[i:], boldClose):
				tt, width = TBoldClose, len(boldClose)
			case bytes.HasPrefix(src[i:], italicOpen):
				tt, width = TItalicOpen, len(italicOpen)
			case bytes.HasPrefix(src[i:], italicClose):
				tt, width = TItalicClose, len(italicClose)
			default:
				i++
				continue
			}
		case '[':
			if !bytes.HasPrefix(src[i:], linkOpen) {
				i++
				continue
			}
			tt, width = TLinkOpen, len(linkOpen)
		case ']':
			if !bytes.HasPrefix(src[i:], linkClose) {
				i++
				continue
			}
			tt, width = TLinkClose, len(linkClose)
		case '|':
			tt, width = TPipe, 1
		case '\n':
			pd.nl(i)
			i++
			continue
		default:
			i++
			continue
		}
		flush(i)
		dst = append(dst, Token{Type: tt, Pos: pd.Pos(i), Bytes: src[i : i+width]})
		i += width
		ts = i
	}
	flush(n)
	return dst
}
