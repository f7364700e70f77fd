// Package config loads the optional toolkit configuration: output color mode
// and theme overrides for the styled-text color table. The file lives under
// the XDG config directory and may be TOML or YAML. A missing file is not an
// error; defaults apply.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/clide/pkg/errors"
	"github.com/arthur-debert/clide/pkg/logging"
	"github.com/arthur-debert/clide/pkg/style"
)

// Identifiers for configuration failures.
const (
	ErrConfigLoad  = errors.Identifier("configLoad")
	ErrConfigParse = errors.Identifier("configParse")
)

// ThemeConfig overrides the built-in foreground colors. Empty fields keep
// the defaults.
type ThemeConfig struct {
	Text    string `toml:"text" yaml:"text"`
	Info    string `toml:"info" yaml:"info"`
	Warning string `toml:"warning" yaml:"warning"`
	Error   string `toml:"error" yaml:"error"`
}

// Config is the toolkit configuration.
type Config struct {
	// Color is "auto", "always", or "never".
	Color string      `toml:"color" yaml:"color"`
	Theme ThemeConfig `toml:"theme" yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Color: "auto"}
}

// candidates are the file names probed under the config directory, in order.
var candidates = []string{"clide.toml", "clide.yaml", "clide.yml"}

// Load finds and parses the configuration file. When no file exists the
// defaults are returned with a nil error.
func Load() (Config, error) {
	logger := logging.GetLogger("config")

	dir := filepath.Join(xdg.ConfigHome, "clide")
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		logger.Debug().Str("path", path).Msg("loading config file")
		return LoadFile(path)
	}

	logger.Debug().Str("dir", dir).Msg("no config file found, using defaults")
	return Default(), nil
}

// LoadFile parses one configuration file, chosen by extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrapf(err, ErrConfigLoad, "cannot read config file %q", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Default(), errors.Newf(ErrConfigParse, "unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return Default(), errors.Wrapf(err, ErrConfigParse, "cannot parse config file %q", path)
	}
	return cfg, nil
}

// ApplyTheme installs the configured color overrides into the style table.
func (c Config) ApplyTheme() {
	style.ApplyTheme(style.Theme{
		Text:    c.Theme.Text,
		Info:    c.Theme.Info,
		Warning: c.Theme.Warning,
		Error:   c.Theme.Error,
	})
}
