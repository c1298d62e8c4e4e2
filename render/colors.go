package render

import (
	"strings"

	"github.com/wikitext-format/go-wikitext/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	MarkupColor
	ValueColor
	TargetColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: KindColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}

	able := Colorable{Attr: ValueColor}
	able.Type = ir.TextType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Attr: MarkupColor}
	able.Type = ir.BoldType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Type = ir.ItalicType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.SentenceType
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	able.Type = ir.LinkType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = TargetColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
