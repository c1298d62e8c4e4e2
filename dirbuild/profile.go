package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/wikitext-format/go-wikitext/debug"
)

// Profiles lists the profile names available under the profiles
// subdirectory of the build root.
func (d *Dir) Profiles() ([]string, error) {
	dirEnts, err := os.ReadDir(filepath.Join(d.Root, "profiles"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	res := []string{}
	suffix := d.profileSuffix()
	for _, dirEnt := range dirEnts {
		if dirEnt.IsDir() {
			continue
		}
		fName := dirEnt.Name()
		if !strings.HasSuffix(fName, suffix) {
			continue
		}
		res = append(res, fName[:len(fName)-len(suffix)])
	}
	return res, nil
}

// LoadProfile merges a profile's env over the build env.  profile is
// either a name under profiles/ or a path to a profile file.
func (d *Dir) LoadProfile(profile string) error {
	profilePath, err := d.profilePath(profile)
	if err != nil {
		return err
	}
	dd, err := os.ReadFile(profilePath)
	if err != nil {
		return err
	}
	patch := struct {
		Env map[string]any `yaml:"env" json:"env"`
	}{}
	if err := yaml.Unmarshal(dd, &patch); err != nil {
		return fmt.Errorf("could not decode profile %s: %w", profilePath, err)
	}
	if patch.Env == nil {
		return fmt.Errorf("no env in profile at %s", profilePath)
	}
	d.Env = mergeEnv(d.Env, patch.Env)
	if debug.Build() {
		debug.Logf("profile %q env: %v\n", profile, d.Env)
	}
	return nil
}

func (d *Dir) profilePath(profile string) (string, error) {
	// try just the file
	st, err := os.Stat(profile)
	if err == nil && !st.IsDir() {
		return profile, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	path := filepath.Join(d.Root, "profiles", profile+d.profileSuffix())
	st, err = os.Stat(path)
	if err == nil && !st.IsDir() {
		return path, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return "", fmt.Errorf("no profile %q at %s", profile, path)
}

func (d *Dir) profileSuffix() string {
	return ".yaml"
}
