package render

import "github.com/wikitext-format/go-wikitext/format"

type RenderOption func(*RenderState)

func RenderFormat(f format.Format) RenderOption {
	return func(rs *RenderState) { rs.format = f }
}

// FormatFromOpts extracts the format from render options.
func FormatFromOpts(opts ...RenderOption) format.Format {
	rs := &RenderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return rs.format
}

// Join separates sibling renderings, "" by default.
func Join(sep string) RenderOption {
	return func(rs *RenderState) { rs.join = sep }
}

func RenderColors(c *Colors) RenderOption {
	return func(rs *RenderState) { rs.Color = c.Color }
}
