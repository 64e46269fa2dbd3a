package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/webman/pkg/manifest"
)

// ErrUnsupportedFormat reports a manifest config file whose extension
// names no decodable format.
var ErrUnsupportedFormat = errors.New("unsupported manifest config format")

// LoadManifestConfig decodes a standalone manifest configuration document.
// The format is selected by extension: .yaml/.yml, .toml, or .json.
func LoadManifestConfig(path string) (manifest.Config, error) {
	var cfg manifest.Config

	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration
	if err != nil {
		return cfg, fmt.Errorf("failed to read manifest config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w %q (want .yaml, .toml, or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return cfg, nil
}
