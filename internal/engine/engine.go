package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"subweave/internal/align"
	"subweave/internal/render"
	"subweave/internal/sentences"
	"subweave/internal/styles"
	"subweave/internal/transcript"
)

// lockFileName guards the output directory against concurrent runs writing
// the same files.
const lockFileName = ".subweave.lock"

// Inputs describes one alignment run. TranscriptPath and SentencesPath are
// metadata carried into the summary; Words and Pairs are the materialized
// inputs.
type Inputs struct {
	TranscriptPath string
	SentencesPath  string

	Words []transcript.Word
	Pairs []sentences.Pair

	Styles     styles.TrackStyles
	PresetName string
	Dims       *styles.Dimensions

	OutputDir        string
	SRTSpecs         []render.OutputSpec
	SkipUnmatchedSRT bool
	// KaraokeFile names the ASS output; empty disables the karaoke track.
	KaraokeFile string
	// ForDisplay applies the CJK punctuation cleanup to translated text in
	// SRT output. Audio-timing runs keep the text verbatim.
	ForDisplay bool
}

// Summary reports what a run produced.
type Summary struct {
	RunID          string        `json:"run_id"`
	TranscriptPath string        `json:"transcript"`
	SentencesPath  string        `json:"sentences"`
	OutputDir      string        `json:"output_dir"`
	Preset         string        `json:"preset"`
	Total          int           `json:"total_sentences"`
	Matched        int           `json:"matched"`
	Unmatched      int           `json:"unmatched"`
	Outputs        []string      `json:"outputs"`
	Elapsed        time.Duration `json:"elapsed_ns"`
}

// Run aligns the sentence pairs against the word stream and writes the
// configured subtitle files. The output directory is created if needed and
// held under a file lock for the duration of the run.
func Run(ctx context.Context, logger *slog.Logger, in Inputs) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	if err := transcript.Validate(in.Words); err != nil {
		return nil, fmt.Errorf("validate transcript: %w", err)
	}
	// Clean edits in place; work on a copy so Inputs stays caller-owned.
	pairs := sentences.Clean(append([]sentences.Pair(nil), in.Pairs...))

	idx := align.BuildIndex(in.Words)
	sources := make([]string, len(pairs))
	for i, p := range pairs {
		sources[i] = p.Source
	}
	aligned := align.Sentences(idx, sources, in.Words)

	matched := 0
	for _, a := range aligned {
		if a.Matched() {
			matched++
		}
	}
	logger.Info("alignment complete",
		slog.Int("sentences", len(aligned)),
		slog.Int("matched", matched),
		slog.Int("unmatched", len(aligned)-matched))

	if err := os.MkdirAll(in.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(in.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is in use by another run", in.OutputDir)
	}
	defer func() { _ = lock.Unlock() }()

	srtPairs := pairs
	if in.ForDisplay {
		srtPairs = make([]sentences.Pair, len(pairs))
		for i, p := range pairs {
			srtPairs[i] = sentences.Pair{Source: p.Source, Translated: sentences.DisplayText(p.Translated)}
		}
	}

	var outputs []string
	g, gctx := errgroup.WithContext(ctx)
	opts := render.SRTOptions{SkipUnmatched: in.SkipUnmatchedSRT}
	for _, spec := range in.SRTSpecs {
		spec := spec
		target := filepath.Join(in.OutputDir, spec.Filename)
		outputs = append(outputs, target)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content := render.SRT(aligned, srtPairs, spec, opts)
			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", spec.Filename, err)
			}
			logger.Debug("wrote srt", slog.String("file", target))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if in.KaraokeFile != "" {
		resolved := styles.Resolve(in.Styles, in.Dims)
		target := filepath.Join(in.OutputDir, in.KaraokeFile)
		content := render.Karaoke(aligned, pairs, in.Words, resolved)
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write karaoke track: %w", err)
		}
		outputs = append(outputs, target)
		logger.Debug("wrote karaoke track",
			slog.String("file", target),
			slog.Bool("portrait", resolved.Portrait))
	}

	sort.Strings(outputs)
	return &Summary{
		RunID:          runID,
		TranscriptPath: in.TranscriptPath,
		SentencesPath:  in.SentencesPath,
		OutputDir:      in.OutputDir,
		Preset:         in.PresetName,
		Total:          len(aligned),
		Matched:        matched,
		Unmatched:      len(aligned) - matched,
		Outputs:        outputs,
		Elapsed:        time.Since(started),
	}, nil
}
