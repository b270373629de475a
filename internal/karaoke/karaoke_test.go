package karaoke

import (
	"math"
	"testing"

	"subweave/internal/align"
	"subweave/internal/transcript"
)

func matched(start, end float64, first, last int) align.Aligned {
	return align.Aligned{
		Start:     start,
		End:       end,
		WordRange: &align.WordRange{First: first, Last: last},
	}
}

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name    string
		totalCS int
		n       int
		want    []int
	}{
		{"even split", 100, 4, []int{25, 25, 25, 25}},
		{"remainder to last", 101, 4, []int{25, 25, 25, 26}},
		{"single slot", 73, 1, []int{73}},
		{"short total clamps", 2, 5, []int{1, 1, 1, 1, 1}},
		{"zero slots", 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEvenly(tt.totalCS, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitEvenly(%d, %d) = %v, want %v", tt.totalCS, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("SplitEvenly(%d, %d) = %v, want %v", tt.totalCS, tt.n, got, tt.want)
				}
			}
		})
	}
}

func TestSplitEvenlySumExact(t *testing.T) {
	// For every case where totalCS >= n the sum must equal totalCS exactly.
	for totalCS := 1; totalCS <= 500; totalCS += 7 {
		for n := 1; n <= 40; n++ {
			if totalCS < n {
				continue
			}
			sum := 0
			for _, d := range SplitEvenly(totalCS, n) {
				sum += d
			}
			if sum != totalCS {
				t.Fatalf("SplitEvenly(%d, %d) sums to %d", totalCS, n, sum)
			}
		}
	}
}

func TestTranslatedTrack(t *testing.T) {
	a := matched(0.0, 1.0, 0, 1)
	track := TranslatedTrack(a, "你好世界")
	if len(track.Units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(track.Units))
	}
	for i, u := range track.Units {
		if u.FillCS != 25 {
			t.Errorf("unit %d fill = %d, want 25", i, u.FillCS)
		}
	}
	if track.Units[0].Text != "你" || track.Units[3].Text != "界" {
		t.Errorf("unit texts wrong: %+v", track.Units)
	}
	if got := track.TotalFillCS(); got != 100 {
		t.Errorf("total fill = %d, want 100", got)
	}
}

func TestTranslatedTrackRemainder(t *testing.T) {
	a := matched(0.0, 1.01, 0, 1)
	track := TranslatedTrack(a, "你好世界")
	want := []int{25, 25, 25, 26}
	if len(track.Units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(track.Units))
	}
	for i, u := range track.Units {
		if u.FillCS != want[i] {
			t.Errorf("unit %d fill = %d, want %d", i, u.FillCS, want[i])
		}
	}
	if got := track.TotalFillCS(); got != 101 {
		t.Errorf("total fill = %d, want exact 101", got)
	}
}

func TestTranslatedTrackSumMatchesSpan(t *testing.T) {
	texts := []string{"你好", "一二三四五六七", "short", "a"}
	spans := []float64{0.37, 1.0, 2.49, 5.01}
	for _, text := range texts {
		for _, span := range spans {
			a := matched(1.0, 1.0+span, 0, 0)
			track := TranslatedTrack(a, text)
			totalCS := int(math.Round(span * 100))
			if totalCS < len([]rune(text)) {
				continue // clamp regime, covered elsewhere
			}
			if got := track.TotalFillCS(); got != totalCS {
				t.Errorf("text %q span %.2f: total fill = %d, want %d", text, span, got, totalCS)
			}
		}
	}
}

func TestTranslatedTrackEmptyText(t *testing.T) {
	a := matched(0.0, 1.0, 0, 1)
	track := TranslatedTrack(a, "")
	if len(track.Units) != 0 {
		t.Fatalf("expected no units for empty text, got %d", len(track.Units))
	}
}

func TestTranslatedTrackUnmatched(t *testing.T) {
	track := TranslatedTrack(align.Aligned{SentenceID: 3}, "你好")
	if len(track.Units) != 0 {
		t.Fatalf("expected no units for unmatched sentence, got %d", len(track.Units))
	}
}

func TestSourceTrack(t *testing.T) {
	words := []transcript.Word{
		{Text: "the", Start: 0.0, End: 0.5},
		{Text: "cat", Start: 0.7, End: 1.0}, // 200ms gap before
		{Text: "sat", Start: 1.0, End: 1.5},
	}
	a := matched(0.0, 1.5, 0, 2)
	track := SourceTrack(a, words)
	if len(track.Units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(track.Units))
	}

	if track.Units[0].LeadCS != 0 || track.Units[0].FillCS != 50 {
		t.Errorf("unit 0 = %+v, want lead 0 fill 50", track.Units[0])
	}
	if track.Units[1].LeadCS != 20 || track.Units[1].FillCS != 30 {
		t.Errorf("unit 1 = %+v, want lead 20 fill 30", track.Units[1])
	}
	if track.Units[2].LeadCS != 0 || track.Units[2].FillCS != 50 {
		t.Errorf("unit 2 = %+v, want lead 0 fill 50", track.Units[2])
	}
	if track.Units[1].Text != "cat" {
		t.Errorf("unit 1 text = %q, want cat", track.Units[1].Text)
	}
}

func TestSourceTrackMinimumFill(t *testing.T) {
	words := []transcript.Word{{Text: "blip", Start: 1.0, End: 1.004}}
	a := matched(1.0, 1.004, 0, 0)
	track := SourceTrack(a, words)
	if track.Units[0].FillCS != 1 {
		t.Errorf("fill = %d, want floor of 1cs", track.Units[0].FillCS)
	}
}

func TestSourceTrackUnmatched(t *testing.T) {
	track := SourceTrack(align.Aligned{SentenceID: 1}, testWordsShort())
	if len(track.Units) != 0 {
		t.Fatalf("expected no units for unmatched sentence, got %d", len(track.Units))
	}
}

func testWordsShort() []transcript.Word {
	return []transcript.Word{{Text: "a", Start: 0, End: 1}}
}
