package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type whisperSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []whisperWord `json:"words"`
}

type whisperPayload struct {
	Segments []whisperSegment `json:"segments"`
}

type flatWord struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Load reads a word-level transcript from path. Two JSON shapes are
// accepted: a whisperX-style document ({"segments": [{"words": [...]}]})
// and a flat word array ([{"text": ..., "start": ..., "end": ...}]).
// The returned stream is validated.
func Load(path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(data)
}

// Parse decodes transcript JSON, detecting the document shape from the
// first token.
func Parse(data []byte) ([]Word, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty transcript")
	}

	var words []Word
	switch trimmed[0] {
	case '[':
		var flat []flatWord
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return nil, fmt.Errorf("parse word array: %w", err)
		}
		words = make([]Word, 0, len(flat))
		for _, w := range flat {
			words = append(words, Word{Text: cleanToken(w.Text), Start: w.Start, End: w.End})
		}
	case '{':
		var payload whisperPayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("parse whisperx json: %w", err)
		}
		for _, seg := range payload.Segments {
			for _, w := range seg.Words {
				words = append(words, Word{Text: cleanToken(w.Word), Start: w.Start, End: w.End})
			}
		}
	default:
		return nil, fmt.Errorf("unrecognized transcript format")
	}

	if err := Validate(words); err != nil {
		return nil, err
	}
	return words, nil
}
