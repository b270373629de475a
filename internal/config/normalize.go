package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}

	c.Style.Preset = strings.ToLower(strings.TrimSpace(c.Style.Preset))
	if c.Style.Preset == "" {
		c.Style.Preset = defaultPreset
	}
	c.Style.Source.normalize()
	c.Style.Translation.normalize()

	if len(c.Output.Combinations) == 0 {
		c.Output.Combinations = defaultCombinations()
	}
	for i, combo := range c.Output.Combinations {
		c.Output.Combinations[i] = strings.ToLower(strings.TrimSpace(combo))
	}
	c.Output.KaraokeFile = strings.TrimSpace(c.Output.KaraokeFile)
	if c.Output.KaraokeFile == "" {
		c.Output.KaraokeFile = defaultKaraokeFile
	}

	if strings.TrimSpace(c.RunLog.Path) == "" {
		c.RunLog.Path = defaultRunLogPath
	}
	if c.RunLog.Path, err = ExpandPath(c.RunLog.Path); err != nil {
		return fmt.Errorf("run_log.path: %w", err)
	}

	c.normalizeLogging()
	return nil
}

func (o *StyleOverride) normalize() {
	o.Font = strings.TrimSpace(o.Font)
	o.PrimaryColor = strings.TrimSpace(o.PrimaryColor)
	o.SecondaryColor = strings.TrimSpace(o.SecondaryColor)
	o.OutlineColor = strings.TrimSpace(o.OutlineColor)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// ExpandPath resolves a leading ~ to the current user's home directory and
// returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	return abs, nil
}
