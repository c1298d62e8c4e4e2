package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	H bool `cli:"name=h aliases=html desc='output html'"`
	L bool `cli:"name=l aliases=latex desc='output latex'"`
	M bool `cli:"name=m aliases=markdown desc='output markdown'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// formatSet reports whether the output format was chosen explicitly.
func (cfg *MainConfig) formatSet() bool {
	return cfg.OutFormat != nil || count(cfg.T, cfg.H, cfg.L, cfg.M) != 0
}

func (cfg *MainConfig) format() format.Format {
	var fmat format.Format
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.H:
		fmat = format.HTMLFormat
	case cfg.L:
		fmat = format.LaTeXFormat
	case cfg.M:
		fmat = format.MarkdownFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	res := []render.RenderOption{
		render.RenderFormat(cfg.format()),
	}
	return append(res, cfg.colorOpts(w)...)
}

func (cfg *MainConfig) colorOpts(w io.Writer) []render.RenderOption {
	if cfg.Color {
		return []render.RenderOption{render.RenderColors(render.NewColors())}
	}
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []render.RenderOption{render.RenderColors(render.NewColors())}
	}
	return nil
}

type RenderConfig struct {
	*MainConfig

	Raw  bool `cli:"name=raw desc='render the parse tree without optimization'"`
	Wrap int  `cli:"name=wrap desc='wrap text output at width'"`

	Render *cli.Command
}

// wrapWidth resolves the text wrap width: the -wrap value when given,
// else the terminal width when w is a tty, else 0 for no wrapping.
func (cfg *RenderConfig) wrapWidth(w io.Writer) int {
	wrapSet := false
	for _, opt := range cfg.Render.Opts {
		if opt.Name != "wrap" {
			continue
		}
		wrapSet = opt.Value != nil
		break
	}
	if wrapSet {
		return cfg.Wrap
	}
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
		return tw
	}
	return 0
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Raw  bool `cli:"name=raw desc='dump the parse tree without optimization'"`
	Tree *cli.Command
}

type SummaryConfig struct {
	*MainConfig

	Summary *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Sum bool `cli:"name=s aliases=summary desc='emit a summary merge patch instead of a text diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env map[string]any

	Q string `cli:"name=q desc='query expression'"`

	Query *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env map[string]any

	List    bool   `cli:"name=l aliases=list desc='list profiles'"`
	Profile string `cli:"name=p aliases=profile desc='profile to build'"`
	ShowEnv bool   `cli:"name=s aliases=show,sh desc='show environment'"`
	Dest    string `cli:"name=dest desc='destination directory override'"`

	Build *cli.Command
}
