package dirbuild

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeBuildDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestOpenDir(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": `
formats: [html, text]
sources:
  - file: a.wiki
  - dir: pages
env:
  who: prod
`,
		"a.wiki":        "hello ''x''",
		"pages/b.wiki":  "<b>y</b>",
		"pages/ignored": "not a wiki source",
	})
	d, err := OpenDir(root, map[string]any{"who": "cli"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Formats, []string{"html", "text"}; !cmp.Equal(got, want) {
		t.Errorf("formats: got %v want %v", got, want)
	}
	if got, want := d.Env["who"], "cli"; got != want {
		t.Errorf("env who: got %v want %v", got, want)
	}
	docs, err := d.Docs()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].Name != "a" || docs[1].Name != "b" {
		t.Errorf("doc names: got %q, %q", docs[0].Name, docs[1].Name)
	}
}

func TestOpenDirJSON(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.json": `{"sources": [{"file": "a.wiki"}]}`,
		"a.wiki":     "plain",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Formats, []string{"text"}; !cmp.Equal(got, want) {
		t.Errorf("default formats: got %v want %v", got, want)
	}
}

func TestOpenDirMissing(t *testing.T) {
	_, err := OpenDir(t.TempDir(), nil)
	if !errors.Is(err, ErrNoBuildFile) {
		t.Errorf("got %v, want ErrNoBuildFile", err)
	}
}

func TestDefaultDir(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"a.wiki": "one",
		"b.wiki": "two",
		"notes":  "not a wiki source",
	})
	d, err := DefaultDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	docs, err := d.Run(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if got, want := buf.String(), "one\n---\ntwo\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestOpenDirBadFormat(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "formats: [pdf]\nsources: [{file: a.wiki}]\n",
		"a.wiki":     "x",
	})
	if _, err := OpenDir(root, nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDocsBadSource(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki, dir: pages}]\n",
		"a.wiki":     "x",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Docs(); err == nil {
		t.Error("expected error for source naming both file and dir")
	}
}

func TestRunStream(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki}, {file: b.wiki}]\n",
		"a.wiki":     "hello ''x''",
		"b.wiki":     "<b>y</b>",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	docs, err := d.Run(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	const want = "hello x\n---\ny\n"
	if got := buf.String(); got != want {
		t.Errorf("stream: got %q want %q", got, want)
	}
}

func TestRunDestDir(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": `
destDir: out
formats: [text, html]
sources: [{file: a.wiki}]
`,
		"a.wiki": "hello ''x''",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Run(nil); err != nil {
		t.Fatal(err)
	}
	for fn, want := range map[string]string{
		"a.txt":  "hello x\n",
		"a.html": `<span class="sentence">hello <i>x</i></span>` + "\n",
	} {
		data, err := os.ReadFile(filepath.Join(root, "out", fn))
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != want {
			t.Errorf("%s: got %q want %q", fn, got, want)
		}
	}
}

func TestRunDedupsNames(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": `
destDir: out
sources: [{dir: d1}, {dir: d2}]
`,
		"d1/n.wiki": "one",
		"d2/n.wiki": "two",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Run(nil); err != nil {
		t.Fatal(err)
	}
	for fn, want := range map[string]string{
		"n.txt":   "one\n",
		"n-1.txt": "two\n",
	} {
		data, err := os.ReadFile(filepath.Join(root, "out", fn))
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != want {
			t.Errorf("%s: got %q want %q", fn, got, want)
		}
	}
}

func TestRunExpandsEnv(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": `
sources: [{file: a.wiki}]
env:
  who: go
`,
		"a.wiki": "hi $[who]",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if _, err := d.Run(buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "hi go\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunExpandError(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki}]\nenv: {who: go}\n",
		"a.wiki":     "hi $[who",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Run(bytes.NewBuffer(nil)); err == nil {
		t.Error("expected error for unterminated segment")
	}
}

func TestProfiles(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml":        "sources: [{file: a.wiki}]\nenv: {who: prod, greet: hi}\n",
		"a.wiki":            "$[greet] $[who]",
		"profiles/dev.yaml": "env: {who: dev}\n",
		"profiles/ci.yaml":  "env: {who: ci}\n",
		"profiles/README":   "not a profile",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	profiles, err := d.Profiles()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"ci", "dev"}; !cmp.Equal(profiles, want) {
		t.Errorf("profiles: got %v want %v", profiles, want)
	}
	if err := d.LoadProfile("dev"); err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if _, err := d.Run(buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "hi dev\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestProfilesNone(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki}]\n",
		"a.wiki":     "x",
	})
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	profiles, err := d.Profiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 0 {
		t.Errorf("got %v, want none", profiles)
	}
	if err := d.LoadProfile("dev"); err == nil {
		t.Error("expected error loading absent profile")
	}
}

func TestLoadProfilePath(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki}]\n",
		"a.wiki":     "x",
	})
	patch := filepath.Join(t.TempDir(), "patch.yaml")
	if err := os.WriteFile(patch, []byte("env: {who: patched}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.LoadProfile(patch); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Env["who"], "patched"; got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnv, `{"who": "osenv"}`)
	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := env["who"], "osenv"; got != want {
		t.Errorf("got %v want %v", got, want)
	}
	t.Setenv(EnvEnv, "")
	env, err = LoadEnv()
	if err != nil || env != nil {
		t.Errorf("got %v, %v, want nil env for unset var", env, err)
	}
}

func TestOpenDirEnvPrecedence(t *testing.T) {
	root := writeBuildDir(t, map[string]string{
		"build.yaml": "sources: [{file: a.wiki}]\nenv: {a: build, b: build, c: build}\n",
		"a.wiki":     "x",
	})
	t.Setenv(EnvEnv, `{"b": "os", "c": "os"}`)
	d, err := OpenDir(root, map[string]any{"c": "cli"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": "build", "b": "os", "c": "cli"}
	if diff := cmp.Diff(want, d.Env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEnv(t *testing.T) {
	a := map[string]any{
		"x": "a",
		"m": map[string]any{"p": "a", "q": "a"},
	}
	b := map[string]any{
		"y": "b",
		"m": map[string]any{"q": "b"},
	}
	want := map[string]any{
		"x": "a",
		"y": "b",
		"m": map[string]any{"p": "a", "q": "b"},
	}
	if diff := cmp.Diff(want, mergeEnv(a, b)); diff != "" {
		t.Errorf("mergeEnv mismatch (-want +got):\n%s", diff)
	}
}
