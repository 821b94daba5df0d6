// Package config loads fsa settings from TOML or YAML files.
//
// Every field has a default, so a file only needs the keys it changes:
//
//	[render]
//	format = "png"
//
//	[serve]
//	addr = ":9090"
//	redis_addr = "localhost:6379"
//
// Command-line flags override whatever the file sets.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

const appName = "fsa"

// Config is the full set of file-backed settings.
type Config struct {
	Log      Log      `toml:"log" yaml:"log"`
	Render   Render   `toml:"render" yaml:"render"`
	Classify Classify `toml:"classify" yaml:"classify"`
	Serve    Serve    `toml:"serve" yaml:"serve"`
}

// Log controls CLI logging.
type Log struct {
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// Render holds diagram defaults.
type Render struct {
	Format   string `toml:"format" yaml:"format"`
	NoCache  bool   `toml:"no_cache" yaml:"no_cache"`
	CacheTTL string `toml:"cache_ttl" yaml:"cache_ttl"`
}

// Classify mirrors the tunables of the profile classification experiment.
type Classify struct {
	Dataset        string `toml:"dataset" yaml:"dataset"`
	Total          int    `toml:"total" yaml:"total"`
	Genuine        int    `toml:"genuine" yaml:"genuine"`
	MaxProfiles    int    `toml:"max_profiles" yaml:"max_profiles"`
	Seed           uint64 `toml:"seed" yaml:"seed"`
	GenuinePattern string `toml:"genuine_pattern" yaml:"genuine_pattern"`
	FakePattern    string `toml:"fake_pattern" yaml:"fake_pattern"`
}

// Serve configures the HTTP API.
type Serve struct {
	Addr      string `toml:"addr" yaml:"addr"`
	RedisAddr string `toml:"redis_addr" yaml:"redis_addr"`
	CacheTTL  string `toml:"cache_ttl" yaml:"cache_ttl"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render: Render{
			Format:   "svg",
			CacheTTL: "168h",
		},
		Classify: Classify{
			Total:          4039,
			Genuine:        1399,
			MaxProfiles:    51,
			Seed:           42,
			GenuinePattern: "(a|b)*a#",
			FakePattern:    "(a*|b)(b|ab*a)#",
		},
		Serve: Serve{
			Addr:     ":8080",
			CacheTTL: "1h",
		},
	}
}

// Load reads path on top of [Default]. The decoder is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fsaerrors.Wrap(fsaerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, fsaerrors.Wrap(fsaerrors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fsaerrors.Wrap(fsaerrors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
	default:
		return cfg, fsaerrors.New(fsaerrors.ErrCodeUnsupported, "config format %q (want .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads [DefaultPath] if it exists and returns [Default]
// otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns $XDG_CONFIG_HOME/fsa/config.toml, falling back to
// ~/.config/fsa/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate checks that durations parse and counts are sane.
func (c Config) Validate() error {
	if _, err := parseTTL(c.Render.CacheTTL); err != nil {
		return fsaerrors.Wrap(fsaerrors.ErrCodeValidation, err, "render.cache_ttl")
	}
	if _, err := parseTTL(c.Serve.CacheTTL); err != nil {
		return fsaerrors.Wrap(fsaerrors.ErrCodeValidation, err, "serve.cache_ttl")
	}
	if c.Classify.Total < 0 || c.Classify.MaxProfiles < 0 {
		return fsaerrors.New(fsaerrors.ErrCodeValidation,
			"classify.total and classify.max_profiles must not be negative")
	}
	if c.Classify.Genuine < 0 || c.Classify.Genuine > c.Classify.Total {
		return fsaerrors.New(fsaerrors.ErrCodeValidation,
			"classify.genuine %d out of range [0, %d]", c.Classify.Genuine, c.Classify.Total)
	}
	return nil
}

// RenderTTL is the parsed Render.CacheTTL. Zero means entries never expire.
func (c Config) RenderTTL() time.Duration {
	d, _ := parseTTL(c.Render.CacheTTL)
	return d
}

// ServeTTL is the parsed Serve.CacheTTL.
func (c Config) ServeTTL() time.Duration {
	d, _ := parseTTL(c.Serve.CacheTTL)
	return d
}

func parseTTL(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
