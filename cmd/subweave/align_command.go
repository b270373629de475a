package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subweave/internal/config"
	"subweave/internal/engine"
	"subweave/internal/logging"
	"subweave/internal/render"
	"subweave/internal/runlog"
	"subweave/internal/sentences"
	"subweave/internal/styles"
	"subweave/internal/transcript"
)

func newAlignCommand(configFlag *string) *cobra.Command {
	var (
		transcriptPath string
		sentencesPath  string
		outputDir      string
		presetName     string
		width          int
		height         int
		forAudio       bool
		skipUnmatched  bool
		noKaraoke      bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align sentence pairs against a transcript and write subtitle files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			if strings.TrimSpace(outputDir) != "" {
				if cfg.Paths.OutputDir, err = config.ExpandPath(outputDir); err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
			}
			if strings.TrimSpace(presetName) != "" {
				cfg.Style.Preset = strings.ToLower(strings.TrimSpace(presetName))
			}
			if skipUnmatched {
				cfg.Output.SkipUnmatchedSRT = true
			}

			base, err := styles.Preset(cfg.Style.Preset)
			if err != nil {
				return err
			}
			base, err = styles.Apply(base, styleOverride(cfg.Style.Source), styleOverride(cfg.Style.Translation))
			if err != nil {
				return fmt.Errorf("apply style overrides: %w", err)
			}

			words, err := transcript.Load(transcriptPath)
			if err != nil {
				return err
			}
			pairs, err := sentences.Load(sentencesPath)
			if err != nil {
				return err
			}

			var dims *styles.Dimensions
			if width > 0 && height > 0 {
				dims = &styles.Dimensions{Width: width, Height: height}
			}

			var specs []render.OutputSpec
			if forAudio {
				specs = render.AudioOutputSpecs()
			} else {
				specs, err = render.SpecsFor(cfg.Output.Combinations)
				if err != nil {
					return err
				}
			}

			karaokeFile := cfg.Output.KaraokeFile
			if noKaraoke || forAudio {
				karaokeFile = ""
			}

			summary, err := engine.Run(cmd.Context(), logger, engine.Inputs{
				TranscriptPath:   transcriptPath,
				SentencesPath:    sentencesPath,
				Words:            words,
				Pairs:            pairs,
				Styles:           base,
				PresetName:       cfg.Style.Preset,
				Dims:             dims,
				OutputDir:        cfg.Paths.OutputDir,
				SRTSpecs:         specs,
				SkipUnmatchedSRT: cfg.Output.SkipUnmatchedSRT,
				KaraokeFile:      karaokeFile,
				ForDisplay:       !forAudio,
			})
			if err != nil {
				return err
			}

			if cfg.RunLog.Enabled {
				if err := recordRun(cmd, cfg.RunLog.Path, summary); err != nil {
					logger.Warn("run history not recorded", "error", err)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Word-level transcript JSON (whisperX document or flat word array)")
	cmd.Flags().StringVarP(&sentencesPath, "sentences", "s", "", "Sentence pairs (JSON array or TSV)")
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&presetName, "preset", "p", "", "Style preset (overrides config)")
	cmd.Flags().IntVar(&width, "width", 0, "Video width in pixels, for orientation-aware styling")
	cmd.Flags().IntVar(&height, "height", 0, "Video height in pixels, for orientation-aware styling")
	cmd.Flags().BoolVar(&forAudio, "for-audio", false, "Emit the audio-timing SRT set and skip the karaoke track")
	cmd.Flags().BoolVar(&skipUnmatched, "skip-unmatched", false, "Drop placeholder SRT blocks for sentences that failed alignment")
	cmd.Flags().BoolVar(&noKaraoke, "no-karaoke", false, "Skip the ASS karaoke track")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	_ = cmd.MarkFlagRequired("transcript")
	_ = cmd.MarkFlagRequired("sentences")

	return cmd
}

func styleOverride(o config.StyleOverride) styles.Override {
	return styles.Override{
		FontName:       o.Font,
		FontSize:       o.Size,
		Bold:           o.Bold,
		PrimaryColor:   o.PrimaryColor,
		SecondaryColor: o.SecondaryColor,
		OutlineColor:   o.OutlineColor,
		MarginV:        o.MarginV,
	}
}

func recordRun(cmd *cobra.Command, path string, summary *engine.Summary) error {
	store, err := runlog.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(cmd.Context(), runlog.Entry{
		RunID:      summary.RunID,
		Transcript: summary.TranscriptPath,
		Sentences:  summary.SentencesPath,
		OutputDir:  summary.OutputDir,
		Preset:     summary.Preset,
		Total:      summary.Total,
		Matched:    summary.Matched,
		Unmatched:  summary.Unmatched,
	})
}

func printSummary(cmd *cobra.Command, summary *engine.Summary) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Run", summary.RunID},
		{"Preset", summary.Preset},
		{"Sentences", fmt.Sprintf("%d", summary.Total)},
		{"Matched", fmt.Sprintf("%d", summary.Matched)},
		{"Unmatched", fmt.Sprintf("%d", summary.Unmatched)},
		{"Outputs", strings.Join(summary.Outputs, "\n")},
		{"Elapsed", summary.Elapsed.Round(0).String()},
	}
	fmt.Fprintln(out, summarySpec.render(rows))
}
