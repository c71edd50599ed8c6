// Package config loads the optional hanset.toml configuration file.
//
// The file supplies defaults for the build and analyze commands; command-line
// flags always win over file values. A missing file is not an error — the
// built-in defaults apply.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	hanseterr "github.com/hanworks/hanset/pkg/errors"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "hanset.toml"

// Config mirrors the TOML file layout.
type Config struct {
	Limit    int            `toml:"limit"`    // target charset size
	Output   string         `toml:"output"`   // output document path
	FontDir  string         `toml:"font_dir"` // directory scanned for fonts
	Include  []string       `toml:"include"`  // extra character list files
	Analyzer AnalyzerConfig `toml:"analyzer"`
}

// AnalyzerConfig configures the analyze command.
type AnalyzerConfig struct {
	BaselineCount int      `toml:"baseline_count"` // reference count for the delta
	Sentinels     []string `toml:"sentinels"`      // membership-checked characters
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limit:  3500,
		Output: "charset.txt",
		Analyzer: AnalyzerConfig{
			BaselineCount: 3500,
			Sentinels:     []string{"的", "一"},
		},
	}
}

// Load reads the config file at path, layered over Default. When path is
// empty, DefaultPath is tried; its absence falls back to the defaults, while
// an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, hanseterr.Wrap(hanseterr.ErrCodeInvalidConfig, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, hanseterr.Wrap(hanseterr.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// SentinelRunes converts the configured sentinel strings to runes, keeping
// only single-character entries.
func (a AnalyzerConfig) SentinelRunes() []rune {
	out := make([]rune, 0, len(a.Sentinels))
	for _, s := range a.Sentinels {
		if rs := []rune(s); len(rs) == 1 {
			out = append(out, rs[0])
		}
	}
	return out
}
