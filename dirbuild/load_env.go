package dirbuild

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/wikitext-format/go-wikitext/debug"
)

const (
	EnvEnv = "WIKITEXT_BUILD_ENV"
)

// LoadEnv reads an env overlay from $WIKITEXT_BUILD_ENV, a YAML or
// JSON map.  An unset variable yields a nil env.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	res := map[string]any{}
	if err := yaml.Unmarshal([]byte(envEnv), &res); err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if debug.Build() {
		debug.Logf("loaded env from env: %v\n", res)
	}
	return res, nil
}
