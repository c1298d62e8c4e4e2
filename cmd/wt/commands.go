package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, html/h, latex/l, markdown/m",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "wt").
		WithSynopsis("wt [opts] command [opts]").
		WithDescription("wt is a tool for working with wiki markup.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wtMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			TokensCommand(cfg),
			TreeCommand(cfg),
			SummaryCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			BuildCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r", "re").
		WithSynopsis("render [-raw] [-wrap width] [files]").
		WithDescription("render wiki documents in the output format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderRun(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("tok").
		WithSynopsis("tokens [files]").
		WithDescription("dump the markup tokens of wiki documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithSynopsis("tree [-raw] [files]").
		WithDescription("dump document trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func SummaryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SummaryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Summary, "summary").
		WithAliases("sum").
		WithSynopsis("summary [files]").
		WithDescription("summarize wiki documents as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return summaryRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s] from to").
		WithDescription("diff two wiki documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query -q expr [-e path=val [ -e path2=val2 ]...] [files]").
		WithDescription("query wiki documents with expressions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name: "e",
		Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
	})
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [dir] [-l] [-p profile] [-dest dir] [ env ]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build renders the wiki sources of a build directory.

Build operates on a build directory, which defaults to the current directory.

Build Description

Build looks for a file called 'build.{yaml,json}' in the following form:

  # optional destination directory, relative to the build directory
  destDir: out

  # output formats: text, html, latex, markdown
  formats: [html, text]

  # sources name the wiki documents to build, in order
  sources:
  - file: index.wiki
  - dir: pages  # all *.wiki files under pages, sorted by name

  # env describes the variables available to $[...] segments
  env:
    title: My Wiki

A directory without a build description builds every *.wiki file
directly under it.

With a destination directory, each document is written once per format
as <name><suffix>, e.g. index.html and index.txt.  Without one (or with
-o), documents stream to the output in the first format, separated by
'---' lines.

Environment

Build can have the environment set in 4 ways
1. in the build description file.
2. using '-e path=value'
3. using '-- path1=value1 path2=value2 ...'
4. setting an environment patch in the OS environment variable $WIKITEXT_BUILD_ENV

Arguments take precedence over the environment and later arguments take
precedence over earlier ones.  Both take precedence over the default
environment specified in the 'env:' field of the build description.

Profiles

build can have profiles, which are patches to the environment.  To list
profiles associated with the build, run build -l.  To run with a profile, pass
-p <profile> where <profile> is either a name in the list from '-l' or a
filename containing a patch for the environment.  Profiles are expected to be
YAML files in a sub-directory called 'profiles'.

Show

build -s shows the environment and can be helpful for learning what build
options are available.`
