package render

import (
	"fmt"
	"strings"

	"subweave/internal/align"
	"subweave/internal/sentences"
)

// Column selects which sentence field an SRT line carries.
type Column string

const (
	ColumnSource     Column = "Source"
	ColumnTranslated Column = "Translated"
)

// OutputSpec declares one SRT file: its name and the ordered text columns
// each block carries.
type OutputSpec struct {
	Filename string
	Columns  []Column
}

// DisplayOutputSpecs is the standard display set: each language alone plus
// both stacked orders.
func DisplayOutputSpecs() []OutputSpec {
	return []OutputSpec{
		{Filename: "src.srt", Columns: []Column{ColumnSource}},
		{Filename: "trans.srt", Columns: []Column{ColumnTranslated}},
		{Filename: "src_trans.srt", Columns: []Column{ColumnSource, ColumnTranslated}},
		{Filename: "trans_src.srt", Columns: []Column{ColumnTranslated, ColumnSource}},
	}
}

// AudioOutputSpecs is the reduced set consumed by dubbing pipelines.
func AudioOutputSpecs() []OutputSpec {
	return []OutputSpec{
		{Filename: "src_subs_for_audio.srt", Columns: []Column{ColumnSource}},
		{Filename: "trans_subs_for_audio.srt", Columns: []Column{ColumnTranslated}},
	}
}

// SpecsFor maps configured combination names to output specs. Known names:
// src, trans, src_trans, trans_src.
func SpecsFor(names []string) ([]OutputSpec, error) {
	byName := map[string]OutputSpec{}
	for _, spec := range DisplayOutputSpecs() {
		byName[strings.TrimSuffix(spec.Filename, ".srt")] = spec
	}
	specs := make([]OutputSpec, 0, len(names))
	for _, name := range names {
		spec, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown srt combination %q", name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// SRTOptions adjusts flat subtitle emission.
type SRTOptions struct {
	// SkipUnmatched drops sentences that failed alignment instead of
	// emitting their zero-duration placeholder blocks. Off by default:
	// placeholders keep sentence numbering aligned with the input and make
	// alignment failures visible to downstream tooling.
	SkipUnmatched bool
}

// SRT renders one subtitle file for the given column spec. Unmatched
// sentences emit 00:00:00,000 --> 00:00:00,000 placeholder blocks unless
// opts.SkipUnmatched is set; a zero-duration cue is the "alignment failed"
// sentinel, never a real subtitle.
func SRT(aligned []align.Aligned, pairs []sentences.Pair, spec OutputSpec, opts SRTOptions) string {
	var b strings.Builder
	seq := 0
	for i, a := range aligned {
		if opts.SkipUnmatched && !a.Matched() {
			continue
		}
		seq++
		fmt.Fprintf(&b, "%d\n", seq)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(a.Start), srtTimestamp(a.End))
		for _, col := range spec.Columns {
			switch col {
			case ColumnSource:
				b.WriteString(strings.TrimSpace(pairs[i].Source))
			case ColumnTranslated:
				b.WriteString(strings.TrimSpace(pairs[i].Translated))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	content := strings.TrimRight(b.String(), "\n")
	if content == "" {
		return ""
	}
	return content + "\n"
}

// srtTimestamp formats seconds as HH:MM:SS,mmm with integer millisecond
// truncation.
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMS := int(seconds * 1000)
	hours := totalMS / 3600000
	minutes := (totalMS % 3600000) / 60000
	secs := (totalMS % 60000) / 1000
	millis := totalMS % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
