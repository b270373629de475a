package sentences

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanTranslation(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"你好世界。", "你好世界"},
		{"，你好，世界，", "你好，世界"},
		{"  plain text  ", "plain text"},
		{"。，", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanTranslation(tt.input); got != tt.expected {
			t.Errorf("CleanTranslation(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"你好，世界。", "你好 世界"},
		{"前半句。后半句", "前半句 后半句"},
		{"no cjk punctuation", "no cjk punctuation"},
	}

	for _, tt := range tests {
		if got := DisplayText(tt.input); got != tt.expected {
			t.Errorf("DisplayText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	content := `[
		{"source": "The cat sat", "translated": "猫坐着。"},
		{"source": "Hello", "translated": "你好"}
	]`
	path := filepath.Join(t.TempDir(), "pairs.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	pairs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Source != "The cat sat" || pairs[0].Translated != "猫坐着。" {
		t.Errorf("pair 0 = %+v", pairs[0])
	}
}

func TestLoadTSV(t *testing.T) {
	content := "The cat sat\t猫坐着\n\nHello\t你好\n"
	path := filepath.Join(t.TempDir(), "pairs.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	pairs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[1].Source != "Hello" || pairs[1].Translated != "你好" {
		t.Errorf("pair 1 = %+v", pairs[1])
	}
}

func TestLoadTSVRejectsMissingTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tsv")
	if err := os.WriteFile(path, []byte("no tab here\n"), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for line without tab")
	}
}

func TestClean(t *testing.T) {
	pairs := []Pair{{Source: " Hello ", Translated: "你好。"}}
	Clean(pairs)
	if pairs[0].Source != "Hello" {
		t.Errorf("source = %q, want trimmed", pairs[0].Source)
	}
	if pairs[0].Translated != "你好" {
		t.Errorf("translated = %q, want cleaned", pairs[0].Translated)
	}
}
