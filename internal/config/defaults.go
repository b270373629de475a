package config

const (
	defaultOutputDir   = "~/subweave/output"
	defaultPreset      = "premium_orange"
	defaultKaraokeFile = "subtitle.ass"
	defaultRunLogPath  = "~/.local/share/subweave/runs.db"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

func defaultCombinations() []string {
	return []string{"src", "trans", "src_trans", "trans_src"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Style: Style{
			Preset: defaultPreset,
		},
		Output: Output{
			Combinations: defaultCombinations(),
			KaraokeFile:  defaultKaraokeFile,
		},
		RunLog: RunLog{
			Enabled: true,
			Path:    defaultRunLogPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
