package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
}

// Style selects the subtitle style preset applied to both tracks, plus
// optional per-track overrides merged over the preset.
type Style struct {
	Preset      string        `toml:"preset"`
	Source      StyleOverride `toml:"source"`
	Translation StyleOverride `toml:"translation"`
}

// StyleOverride adjusts one track's preset values. Empty fields keep the
// preset; colors are "#RRGGBB" hex.
type StyleOverride struct {
	Font           string `toml:"font"`
	Size           int    `toml:"size"`
	Bold           *bool  `toml:"bold"`
	PrimaryColor   string `toml:"primary_color"`
	SecondaryColor string `toml:"secondary_color"`
	OutlineColor   string `toml:"outline_color"`
	MarginV        int    `toml:"margin_v"`
}

// Output controls which subtitle files a run emits.
type Output struct {
	// Combinations name the flat SRT files to write; any of
	// src, trans, src_trans, trans_src.
	Combinations []string `toml:"combinations"`
	// SkipUnmatchedSRT drops zero-duration placeholder blocks for
	// sentences that failed alignment instead of emitting them.
	SkipUnmatchedSRT bool `toml:"skip_unmatched_srt"`
	// KaraokeFile is the ASS output filename within the output directory.
	KaraokeFile string `toml:"karaoke_file"`
}

// RunLog configures the SQLite history of alignment runs.
type RunLog struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subweave.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Style   Style   `toml:"style"`
	Output  Output  `toml:"output"`
	RunLog  RunLog  `toml:"run_log"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/subweave/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// checks the default location and falls back to defaults when no file
// exists. The returned config has all path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}
