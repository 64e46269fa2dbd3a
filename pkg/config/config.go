// Package config loads webman settings from the project config file,
// environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fulmenhq/webman/pkg/manifest"
)

// Settings holds all configuration for webman.
type Settings struct {
	Manifest manifest.Config `mapstructure:"manifest"`
	Output   OutputSettings  `mapstructure:"output"`
	Inject   InjectSettings  `mapstructure:"inject"`
	Assets   AssetSettings   `mapstructure:"assets"`
}

// OutputSettings controls where and how the manifest document is written.
type OutputSettings struct {
	Dir           string `mapstructure:"dir"`
	Filename      string `mapstructure:"filename"`
	BrowserConfig bool   `mapstructure:"browserconfig"`
}

// InjectSettings controls page-link synchronization.
type InjectSettings struct {
	Enabled        bool     `mapstructure:"enabled"`
	Extensions     []string `mapstructure:"extensions"`
	Exclude        []string `mapstructure:"exclude"`
	UseCredentials bool     `mapstructure:"use_credentials"`
}

// AssetSettings controls icon existence checking.
type AssetSettings struct {
	BaseDir string `mapstructure:"base_dir"`
	Strict  bool   `mapstructure:"strict"`
}

var defaultSettings = Settings{
	Output: OutputSettings{
		Dir:      "dist",
		Filename: "site.webmanifest",
	},
	Inject: InjectSettings{
		Enabled:    true,
		Extensions: []string{"html", "htm"},
	},
}

// Load reads settings from the given config file, or from webman.yaml in
// the working directory when path is empty. A missing default config file
// is not an error; environment variables with the WEBMAN_ prefix override
// file values.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("output.dir", defaultSettings.Output.Dir)
	v.SetDefault("output.filename", defaultSettings.Output.Filename)
	v.SetDefault("output.browserconfig", defaultSettings.Output.BrowserConfig)
	v.SetDefault("inject.enabled", defaultSettings.Inject.Enabled)
	v.SetDefault("inject.extensions", defaultSettings.Inject.Extensions)
	v.SetDefault("inject.use_credentials", defaultSettings.Inject.UseCredentials)
	v.SetDefault("assets.base_dir", "")
	v.SetDefault("assets.strict", false)

	v.SetEnvPrefix("WEBMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("webman")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// No project config file is normal; anything else is not.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read project config: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &settings, nil
}

// Default returns the built-in settings without consulting files or env.
func Default() *Settings {
	s := defaultSettings
	return &s
}
