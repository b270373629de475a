package align

import "subweave/internal/transcript"

// WordRange is the inclusive span of transcript word indices covered by a
// matched sentence.
type WordRange struct {
	First int
	Last  int
}

// Aligned is the timing result for one sentence. WordRange is nil and both
// timestamps are zero when the sentence could not be matched; callers treat
// that as the explicit alignment-failure signal, not a zero-length cue.
type Aligned struct {
	SentenceID int
	Start      float64
	End        float64
	WordRange  *WordRange
}

// Matched reports whether the sentence was located in the transcript.
func (a Aligned) Matched() bool {
	return a.WordRange != nil
}

// Sentences matches each source sentence, in order, against the glued word
// buffer and derives its start/end from the first and last covered word.
//
// A single cursor scans forward across all sentences. On a match the cursor
// advances past the matched window; on a miss it stays put so the next
// sentence is searched from the same point instead of silently skipping
// transcript content. The leftmost match always wins.
func Sentences(idx *Index, sources []string, words []transcript.Word) []Aligned {
	results := make([]Aligned, 0, len(sources))
	cur := 0

	for id, source := range sources {
		target := []rune(Normalize(source))
		n := len(target)
		if n == 0 {
			results = append(results, Aligned{SentenceID: id})
			continue
		}

		matched := false
		for p := cur; p <= idx.Len()-n; p++ {
			if !runesEqual(idx.window(p, n), target) {
				continue
			}
			first := idx.WordAt(p)
			last := idx.WordAt(p + n - 1)
			results = append(results, Aligned{
				SentenceID: id,
				Start:      words[first].Start,
				End:        words[last].End,
				WordRange:  &WordRange{First: first, Last: last},
			})
			cur = p + n
			matched = true
			break
		}
		if !matched {
			results = append(results, Aligned{SentenceID: id})
		}
	}
	return results
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
