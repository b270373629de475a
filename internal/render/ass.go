package render

import (
	"fmt"
	"math"
	"strings"

	"subweave/internal/align"
	"subweave/internal/karaoke"
	"subweave/internal/sentences"
	"subweave/internal/styles"
	"subweave/internal/transcript"
)

// Cue effect prefixes: a 50ms fade-in plus a soft glow; the source track
// adds letter spacing for the wire-service look.
const (
	sourceEffectPrefix = `{\fad(50,0)\blur1.5\fsp2.5}`
	transEffectPrefix  = `{\fad(50,0)\blur1.5}`
)

const (
	sourceStyleName = "Default"
	transStyleName  = "Trans"
)

// Karaoke renders the dual-track ASS script: a header with the resolved
// playback resolution and both track styles, then two overlapping cues per
// matched sentence — word-fill source on top, character-fill translation
// below. Unmatched sentences are omitted entirely.
func Karaoke(aligned []align.Aligned, pairs []sentences.Pair, words []transcript.Word, resolved styles.Resolved) string {
	var b strings.Builder

	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", resolved.PlayResX)
	fmt.Fprintf(&b, "PlayResY: %d\n", resolved.PlayResY)
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("WrapStyle: 0\n")
	b.WriteString("\n[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	b.WriteString(styleLine(sourceStyleName, resolved.Source))
	b.WriteString(styleLine(transStyleName, resolved.Translation))
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, a := range aligned {
		if !a.Matched() {
			continue
		}

		sourceText := sourceCueText(karaoke.SourceTrack(a, words))
		transText := transCueText(karaoke.TranslatedTrack(a, pairs[a.SentenceID].Translated))

		start := assTime(a.Start)
		end := assTime(a.End)
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s%s\n", start, end, sourceStyleName, sourceEffectPrefix, sourceText)
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s%s\n", start, end, transStyleName, transEffectPrefix, transText)
	}
	return b.String()
}

// sourceCueText assembles word-level fill codes; words are uppercased and
// separated by spaces, with any lead gap emitted as plain \k silence.
func sourceCueText(track karaoke.Track) string {
	var b strings.Builder
	for _, u := range track.Units {
		if u.LeadCS > 0 {
			fmt.Fprintf(&b, `{\k%d}`, u.LeadCS)
		}
		fmt.Fprintf(&b, `{\kf%d}%s `, u.FillCS, strings.ToUpper(sanitizeASS(u.Text)))
	}
	return strings.TrimSpace(b.String())
}

// transCueText assembles per-character fill codes with no separators.
func transCueText(track karaoke.Track) string {
	var b strings.Builder
	for _, u := range track.Units {
		fmt.Fprintf(&b, `{\kf%d}%s`, u.FillCS, sanitizeASS(u.Text))
	}
	return b.String()
}

func styleLine(name string, s styles.Spec) string {
	bold := 0
	if s.Bold {
		bold = -1
	}
	back := styles.RGBA(0, 0, 0, 0)
	if s.BackColor != nil {
		back = *s.BackColor
	}
	return fmt.Sprintf("Style: %s,%s,%d,%s,%s,%s,%s,%d,0,0,0,100,100,0,0,%d,%g,%g,%d,%d,%d,%d,1\n",
		name, s.FontName, s.FontSize,
		s.PrimaryColor.ASS(), s.SecondaryColor.ASS(), s.OutlineColor.ASS(), back.ASS(),
		bold, s.BorderStyle, s.Outline, s.Shadow, s.Alignment,
		s.MarginL, s.MarginR, s.MarginV)
}

// assTime formats seconds as H:MM:SS.CC, the centisecond-precision form ASS
// events use.
func assTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalCS := int(math.Round(seconds * 100))
	hours := totalCS / 360000
	minutes := (totalCS % 360000) / 6000
	secs := (totalCS % 6000) / 100
	cs := totalCS % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, cs)
}

// sanitizeASS keeps cue text from being parsed as override tags.
func sanitizeASS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return s
}
