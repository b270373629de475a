package sentences

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads sentence pairs from path. JSON files hold an array of
// {"source": ..., "translated": ...} objects; anything else is treated as
// tab-separated "source<TAB>translated" lines. Blank lines are skipped.
func Load(path string) ([]Pair, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadJSON(path)
	}
	return loadTSV(path)
}

func loadJSON(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse sentences json: %w", err)
	}
	return pairs, nil
}

func loadTSV(path string) ([]Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentences: %w", err)
	}
	defer file.Close()

	var pairs []Pair
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		source, translated, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("sentences line %d: expected source<TAB>translated", lineNo)
		}
		pairs = append(pairs, Pair{Source: source, Translated: translated})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan sentences: %w", err)
	}
	return pairs, nil
}
