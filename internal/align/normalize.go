package align

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var urlPattern = regexp.MustCompile(`(?:https?://|www\.)\S+`)

// Normalize canonicalizes text for matching: URLs are dropped, the result is
// lowercased, and everything except letters, digits, combining marks, and
// underscores is removed. Whitespace is removed entirely rather than
// collapsed because sentence matching runs against a glued word buffer with
// no separators. Deterministic and total; CJK and other non-Latin word
// characters survive untouched.
func Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	// cases.Caser is documented as potentially stateful, so build one per call.
	text = cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
