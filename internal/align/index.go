package align

import "subweave/internal/transcript"

// Index is the search structure for sentence matching: every normalized word
// is appended to one rune buffer, and each rune position records which word
// produced it so a matched window can be mapped back to transcript timing.
type Index struct {
	buffer []rune
	owner  []int
}

// BuildIndex normalizes each word and glues the results into the search
// buffer. A word whose text normalizes to nothing owns no positions and can
// never be covered by a match; its neighbors still index correctly.
func BuildIndex(words []transcript.Word) *Index {
	idx := &Index{}
	for i, w := range words {
		for _, r := range Normalize(w.Text) {
			idx.buffer = append(idx.buffer, r)
			idx.owner = append(idx.owner, i)
		}
	}
	return idx
}

// Len returns the buffer length in runes.
func (idx *Index) Len() int {
	return len(idx.buffer)
}

// WordAt returns the index of the word owning buffer position p.
func (idx *Index) WordAt(p int) int {
	return idx.owner[p]
}

func (idx *Index) window(p, n int) []rune {
	return idx.buffer[p : p+n]
}
