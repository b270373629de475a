package karaoke

import (
	"math"

	"subweave/internal/align"
	"subweave/internal/transcript"
)

// Unit is one timed fragment of a karaoke cue. LeadCS is silence before the
// fragment starts filling (source track only); FillCS is how long the
// fragment takes to fill, always at least one centisecond.
type Unit struct {
	LeadCS int
	FillCS int
	Text   string
}

// Track holds the ordered karaoke units for one sentence on one language track.
type Track struct {
	SentenceID int
	Units      []Unit
}

// SourceTrack emits one unit per covered transcript word, preserving the
// native ASR timing. The lead of each unit is the gap between the running
// cursor (sentence start, then each word's end) and the word's start; the
// fill is the word's own duration floored to 1cs so no unit is zero-length.
// Returns an empty track for unmatched sentences.
func SourceTrack(a align.Aligned, words []transcript.Word) Track {
	track := Track{SentenceID: a.SentenceID}
	if !a.Matched() {
		return track
	}

	cursorMS := toMS(a.Start)
	for i := a.WordRange.First; i <= a.WordRange.Last; i++ {
		w := words[i]
		startMS := toMS(w.Start)
		endMS := toMS(w.End)

		lead := (startMS - cursorMS) / 10
		if lead < 0 {
			lead = 0
		}
		fill := (endMS - startMS) / 10
		if fill < 1 {
			fill = 1
		}
		track.Units = append(track.Units, Unit{LeadCS: lead, FillCS: fill, Text: w.Text})
		cursorMS = endMS
	}
	return track
}

// TranslatedTrack distributes the sentence span evenly across the
// translation's codepoints. Empty text or an unmatched sentence yields an
// empty track.
func TranslatedTrack(a align.Aligned, translated string) Track {
	track := Track{SentenceID: a.SentenceID}
	if !a.Matched() {
		return track
	}
	chars := []rune(translated)
	if len(chars) == 0 {
		return track
	}

	totalCS := int(math.Round((a.End - a.Start) * 100))
	durations := SplitEvenly(totalCS, len(chars))
	for i, r := range chars {
		track.Units = append(track.Units, Unit{FillCS: durations[i], Text: string(r)})
	}
	return track
}

// SplitEvenly divides totalCS centiseconds across n slots: the first n-1
// slots each get max(1, totalCS/n) and the last slot absorbs the remainder,
// so the sum equals totalCS exactly. When totalCS < n the per-slot minimum
// of 1cs forces the sum above totalCS; the overshoot is accepted rather than
// emitting zero-length units.
func SplitEvenly(totalCS, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalCS / n
	if base < 1 {
		base = 1
	}
	out := make([]int, n)
	for i := 0; i < n-1; i++ {
		out[i] = base
	}
	last := totalCS - base*(n-1)
	if last < 1 {
		last = 1
	}
	out[n-1] = last
	return out
}

// toMS converts seconds to whole milliseconds, rounding to keep values like
// 0.7 from truncating to 699.
func toMS(seconds float64) int {
	return int(math.Round(seconds * 1000))
}

// TotalFillCS sums the fill durations of a track.
func (t Track) TotalFillCS() int {
	sum := 0
	for _, u := range t.Units {
		sum += u.FillCS
	}
	return sum
}
