package transcript

import (
	"fmt"
	"strings"
)

// Word is a single transcribed token with its spoken time span in seconds.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Duration returns the spoken length of the word in seconds.
func (w Word) Duration() float64 {
	return w.End - w.Start
}

// Validate checks that a word stream is usable for alignment: no negative
// times, no word ending before it starts, and non-decreasing start times.
// Alignment arithmetic assumes these hold, so violations fail at ingestion.
func Validate(words []Word) error {
	var prevStart float64
	for i, w := range words {
		if w.Start < 0 || w.End < 0 {
			return fmt.Errorf("word %d %q: negative timestamp (start=%.3f end=%.3f)", i, w.Text, w.Start, w.End)
		}
		if w.End < w.Start {
			return fmt.Errorf("word %d %q: end %.3f before start %.3f", i, w.Text, w.End, w.Start)
		}
		if i > 0 && w.Start < prevStart {
			return fmt.Errorf("word %d %q: start %.3f precedes previous start %.3f", i, w.Text, w.Start, prevStart)
		}
		prevStart = w.Start
	}
	return nil
}

// Span returns the earliest start and latest end across the stream.
func Span(words []Word) (float64, float64) {
	if len(words) == 0 {
		return 0, 0
	}
	start := words[0].Start
	var end float64
	for _, w := range words {
		if w.End > end {
			end = w.End
		}
	}
	return start, end
}

// cleanToken strips the stray quoting some ASR exports wrap tokens in.
func cleanToken(text string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(text), `"`))
}
