package sentences

import "strings"

// Pair couples a source sentence with its translation. Its index in the
// sentence list is its identity; alignment output refers back to it by index.
type Pair struct {
	Source     string `json:"source"`
	Translated string `json:"translated"`
}

// cjkEdgeCutset holds the full-width terminators trimmed from translation
// boundaries before timing synthesis.
const cjkEdgeCutset = "。，"

// CleanTranslation trims whitespace and dangling full-width punctuation from
// a translated sentence. Karaoke timing divides the sentence span across
// characters, so a trailing 。 would consume a visible time slice.
func CleanTranslation(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, cjkEdgeCutset)
	return strings.TrimSpace(text)
}

// DisplayText rewrites a translation for flat SRT display: full-width commas
// and periods become spaces, matching how bilingual hardsubs are usually
// typeset. Karaoke output keeps the original punctuation.
func DisplayText(text string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '。' || r == '，' {
			return ' '
		}
		return r
	}, text)
	return strings.TrimSpace(replaced)
}

// Clean applies CleanTranslation to every pair in place and returns the slice.
func Clean(pairs []Pair) []Pair {
	for i := range pairs {
		pairs[i].Source = strings.TrimSpace(pairs[i].Source)
		pairs[i].Translated = CleanTranslation(pairs[i].Translated)
	}
	return pairs
}
