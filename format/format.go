package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	HTMLFormat
	LaTeXFormat
	MarkdownFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":        TextFormat,
		"text":     TextFormat,
		"txt":      TextFormat,
		"h":        HTMLFormat,
		"html":     HTMLFormat,
		"l":        LaTeXFormat,
		"latex":    LaTeXFormat,
		"tex":      LaTeXFormat,
		"m":        MarkdownFormat,
		"md":       MarkdownFormat,
		"markdown": MarkdownFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case HTMLFormat:
		return []byte("html"), nil
	case LaTeXFormat:
		return []byte("latex"), nil
	case MarkdownFormat:
		return []byte("markdown"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool     { return f == TextFormat }
func (f Format) IsHTML() bool     { return f == HTMLFormat }
func (f Format) IsLaTeX() bool    { return f == LaTeXFormat }
func (f Format) IsMarkdown() bool { return f == MarkdownFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".txt"
	case HTMLFormat:
		return ".html"
	case LaTeXFormat:
		return ".tex"
	case MarkdownFormat:
		return ".md"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, HTMLFormat, LaTeXFormat, MarkdownFormat}
}
