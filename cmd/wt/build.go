package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/wikitext-format/go-wikitext/dirbuild"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg, cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	dir, err := dirbuild.OpenDir(dirPath, cfg.Env)
	if err != nil {
		if !errors.Is(err, dirbuild.ErrNoBuildFile) {
			return err
		}
		dir, err = dirbuild.DefaultDir(dirPath, cfg.Env)
		if err != nil {
			return err
		}
	}
	if cfg.ShowEnv && cfg.List {
		return fmt.Errorf("%w: cannot use -s and -l together", cli.ErrUsage)
	}
	if cfg.List {
		profiles, err := dir.Profiles()
		if err != nil {
			return fmt.Errorf("error getting profiles: %w", err)
		}
		for _, profile := range profiles {
			fmt.Fprintln(cc.Out, profile)
		}
		return nil
	}
	if cfg.Profile != "" {
		if err := dir.LoadProfile(cfg.Profile); err != nil {
			return fmt.Errorf("error loading profile %s: %w", cfg.Profile, err)
		}
	}
	if cfg.ShowEnv {
		d, err := yaml.Marshal(map[string]any{"env": dir.Env})
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	if cfg.Dest != "" {
		dir.DestDir = cfg.Dest
	}
	if cfg.MainConfig.formatSet() {
		dir.Formats = []string{cfg.MainConfig.format().String()}
	}
	var w io.Writer = cc.Out
	if dir.DestDir != "" && cfg.Out == "" {
		w = nil
	}
	if w != nil {
		dir.DestDir = ""
	}
	docs, err := dir.Run(w, cfg.MainConfig.colorOpts(w)...)
	if err != nil {
		return err
	}
	if w == nil {
		theLog.Info("built", "docs", len(docs), "dest", filepath.Join(dir.Root, dir.DestDir))
	}
	return nil
}

func parseEnvExtras(cfg *BuildConfig, cc *cli.Context, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	f := envOptTypeFunc(cfg.Env)
	ret := args[:delim]
	delim++
	for delim < len(args) {
		arg := args[delim]
		delim++
		_, err := f(cc, arg)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
