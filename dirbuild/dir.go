// Package dirbuild interprets a wiki build directory.
//
// A build directory holds a build.{yaml,json} description naming wiki
// sources, the output formats, and an env for $[...] expansion.  An
// optional profiles/ subdirectory holds named env overlays.
package dirbuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/wikitext-format/go-wikitext/debug"
	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/ir"
	"github.com/wikitext-format/go-wikitext/parse"
)

// SourceSuffix is the extension of wiki source documents.
const SourceSuffix = ".wiki"

// ErrNoBuildFile is returned by OpenDir when the directory has no
// build description.
var ErrNoBuildFile = errors.New("no build description")

// Dir describes a build directory.  Paths in Sources and DestDir are
// relative to Root.
type Dir struct {
	Root    string         `yaml:"-" json:"-"`
	DestDir string         `yaml:"destDir,omitempty" json:"destDir,omitempty"`
	Formats []string       `yaml:"formats,omitempty" json:"formats,omitempty"`
	Sources []Source       `yaml:"sources" json:"sources"`
	Env     map[string]any `yaml:"env,omitempty" json:"env,omitempty"`

	nameCache map[string]int
}

// Source names one wiki document or a directory of them.  Exactly one
// of File, Dir is set.
type Source struct {
	File string `yaml:"file,omitempty" json:"file,omitempty"`
	Dir  string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

// Doc is one loaded source document.
type Doc struct {
	Name string
	Node *ir.Node
}

// OpenDir reads the build description build.{yaml,json} under path.
// The env from $WIKITEXT_BUILD_ENV overrides the description's env,
// and entries of env override both.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	if debug.Build() {
		debug.Logf("OpenDir %q input env: %v\n", path, env)
	}
	// Try build.{yaml,json} in order.
	var (
		d     []byte
		bPath string
		found bool
	)
	for _, name := range []string{"build.yaml", "build.json"} {
		candidatePath := filepath.Join(path, name)
		var err error
		d, err = os.ReadFile(candidatePath)
		if err == nil {
			bPath = candidatePath
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidatePath, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: build.{yaml,json} not found in %q", ErrNoBuildFile, path)
	}
	dir := &Dir{}
	if err := yaml.Unmarshal(d, dir); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", bPath, err)
	}
	dir.Root = path
	return initDir(dir, env)
}

// DefaultDir describes a build of every wiki source directly under
// path, for directories with no build description.
func DefaultDir(path string, env map[string]any) (*Dir, error) {
	dir := &Dir{
		Root:    path,
		Sources: []Source{{Dir: "."}},
	}
	return initDir(dir, env)
}

func initDir(dir *Dir, env map[string]any) (*Dir, error) {
	osEnv, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	dir.Env = mergeEnv(mergeEnv(dir.Env, osEnv), env)
	if len(dir.Formats) == 0 {
		dir.Formats = []string{format.TextFormat.String()}
	}
	if _, err := dir.formats(); err != nil {
		return nil, err
	}
	dir.nameCache = map[string]int{}
	if debug.Build() {
		debug.Logf("opened dir %q env: %v\n", dir.Root, dir.Env)
	}
	return dir, nil
}

func (d *Dir) formats() ([]format.Format, error) {
	res := make([]format.Format, 0, len(d.Formats))
	for _, fs := range d.Formats {
		f, err := format.ParseFormat(fs)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

// Docs loads and parses every source in order.  Directory sources
// contribute their *.wiki files sorted by name.
func (d *Dir) Docs() ([]*Doc, error) {
	var res []*Doc
	for i := range d.Sources {
		src := &d.Sources[i]
		switch {
		case src.File != "" && src.Dir != "":
			return nil, fmt.Errorf("source %d names both file and dir", i)
		case src.File != "":
			doc, err := d.loadDoc(src.File)
			if err != nil {
				return nil, err
			}
			res = append(res, doc)
		case src.Dir != "":
			docs, err := d.loadDir(src.Dir)
			if err != nil {
				return nil, err
			}
			res = append(res, docs...)
		default:
			return nil, fmt.Errorf("source %d names neither file nor dir", i)
		}
	}
	return res, nil
}

func (d *Dir) loadDoc(file string) (*Doc, error) {
	p := filepath.Join(d.Root, file)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("could not read source %q: %w", p, err)
	}
	name := strings.TrimSuffix(filepath.Base(file), SourceSuffix)
	return &Doc{Name: name, Node: parse.Parse(data)}, nil
}

func (d *Dir) loadDir(dirName string) ([]*Doc, error) {
	p := filepath.Join(d.Root, dirName)
	dirEnts, err := os.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("could not read source dir %q: %w", p, err)
	}
	var res []*Doc
	for _, dirEnt := range dirEnts {
		if dirEnt.IsDir() || !strings.HasSuffix(dirEnt.Name(), SourceSuffix) {
			continue
		}
		doc, err := d.loadDoc(filepath.Join(dirName, dirEnt.Name()))
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
	return res, nil
}

// mergeEnv merges b over a, descending into values which are maps in
// both.
func mergeEnv(a, b map[string]any) map[string]any {
	if a == nil {
		a = map[string]any{}
	}
	for k, v := range b {
		mv, ok := v.(map[string]any)
		if !ok {
			a[k] = v
			continue
		}
		ma, ok := a[k].(map[string]any)
		if !ok {
			a[k] = mv
			continue
		}
		a[k] = mergeEnv(ma, mv)
	}
	return a
}
