package dirbuild

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wikitext-format/go-wikitext/eval"
	"github.com/wikitext-format/go-wikitext/format"
	"github.com/wikitext-format/go-wikitext/optimize"
	"github.com/wikitext-format/go-wikitext/render"
)

// Run builds the directory: loads the sources, expands $[...] segments
// against the env, optimizes, and renders.  With w non-nil the docs
// stream to w in the first configured format with separators between
// them; otherwise every configured format is written under DestDir,
// one file per document.  The processed docs are returned.
func (d *Dir) Run(w io.Writer, opts ...render.RenderOption) ([]*Doc, error) {
	docs, err := d.Docs()
	if err != nil {
		return nil, err
	}
	fmts, err := d.formats()
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if len(d.Env) != 0 {
			if err := eval.ExpandEnv(doc.Node, d.Env); err != nil {
				return nil, fmt.Errorf("error expanding %s: %w", doc.Name, err)
			}
		}
		optimize.Optimize(doc.Node)
	}
	if w != nil {
		return docs, d.stream(w, docs, fmts[0], opts...)
	}
	return docs, d.write(docs, fmts, opts...)
}

func (d *Dir) stream(w io.Writer, docs []*Doc, f format.Format, opts ...render.RenderOption) error {
	n := len(docs)
	for i, doc := range docs {
		rOpts := append([]render.RenderOption{render.RenderFormat(f)}, opts...)
		if err := render.Render(doc.Node, w, rOpts...); err != nil {
			return err
		}
		if i != n-1 {
			// doc separator
			if _, err := w.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	if n != 0 {
		_, err := w.Write([]byte{'\n'})
		return err
	}
	return nil
}

func (d *Dir) write(docs []*Doc, fmts []format.Format, opts ...render.RenderOption) error {
	destDir := filepath.Join(d.Root, d.DestDir)
	st, err := os.Stat(destDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", destDir)
	}
	for _, doc := range docs {
		name := d.outName(doc.Name)
		for _, f := range fmts {
			if err := d.writeOut(destDir, name, doc, f, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

// outName dedups output base names so two sources with the same
// basename don't clobber each other.
func (d *Dir) outName(name string) string {
	if name == "" {
		name = "doc"
	}
	n := d.nameCache[name]
	d.nameCache[name] = n + 1
	if n != 0 {
		name += "-" + strconv.Itoa(n)
	}
	return name
}

func (d *Dir) writeOut(destDir, name string, doc *Doc, f format.Format, opts ...render.RenderOption) error {
	wc, err := d.writeCloser(destDir, name+f.Suffix())
	if err != nil {
		return err
	}
	rOpts := append([]render.RenderOption{render.RenderFormat(f)}, opts...)
	if err := render.Render(doc.Node, wc, rOpts...); err != nil {
		wc.Close()
		return err
	}
	if _, err := wc.Write([]byte{'\n'}); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func (d *Dir) writeCloser(destDir, fn string) (io.WriteCloser, error) {
	fp := filepath.Join(destDir, fn)
	f, err := os.OpenFile(fp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return &wc{f: f, w: bufio.NewWriter(f)}, nil
}

type wc struct {
	f *os.File
	w *bufio.Writer
}

func (w *wc) Write(d []byte) (int, error) {
	return w.w.Write(d)
}

func (w *wc) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.f.Close()
}
