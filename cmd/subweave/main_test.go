package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixtures(t *testing.T, base string) (string, string, string) {
	t.Helper()

	transcriptPath := filepath.Join(base, "words.json")
	transcriptJSON := `[
		{"text": "the", "start": 0.0, "end": 0.5},
		{"text": "cat", "start": 0.5, "end": 1.0},
		{"text": "sat", "start": 1.0, "end": 1.5}
	]`
	if err := os.WriteFile(transcriptPath, []byte(transcriptJSON), 0644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	sentencesPath := filepath.Join(base, "pairs.json")
	sentencesJSON := `[{"source": "The cat sat", "translated": "猫坐着"}]`
	if err := os.WriteFile(sentencesPath, []byte(sentencesJSON), 0644); err != nil {
		t.Fatalf("write sentences: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	configTOML := fmt.Sprintf(`
[paths]
output_dir = %q

[run_log]
enabled = true
path = %q
`, filepath.Join(base, "out"), filepath.Join(base, "runs.db"))
	if err := os.WriteFile(configPath, []byte(configTOML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return transcriptPath, sentencesPath, configPath
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestAlignCommand(t *testing.T) {
	base := t.TempDir()
	transcriptPath, sentencesPath, configPath := writeFixtures(t, base)

	out := runCommand(t,
		"align",
		"--config", configPath,
		"--transcript", transcriptPath,
		"--sentences", sentencesPath,
	)
	if !strings.Contains(out, "Matched") {
		t.Errorf("summary table missing:\n%s", out)
	}

	outDir := filepath.Join(base, "out")
	for _, name := range []string{"src.srt", "trans.srt", "src_trans.srt", "trans_src.srt", "subtitle.ass"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}

	// The run should now appear in history.
	runsOut := runCommand(t, "runs", "--config", configPath)
	if !strings.Contains(runsOut, "premium_orange") {
		t.Errorf("runs table missing entry:\n%s", runsOut)
	}
}

func TestAlignCommandStyleOverride(t *testing.T) {
	base := t.TempDir()
	transcriptPath, sentencesPath, _ := writeFixtures(t, base)

	configPath := filepath.Join(base, "override.toml")
	configTOML := fmt.Sprintf(`
[paths]
output_dir = %q

[style]
preset = "premium_orange"

[style.source]
font = "Arial"
primary_color = "#00FF00"

[run_log]
enabled = false
`, filepath.Join(base, "out"))
	if err := os.WriteFile(configPath, []byte(configTOML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	runCommand(t,
		"align",
		"--config", configPath,
		"--transcript", transcriptPath,
		"--sentences", sentencesPath,
	)

	data, err := os.ReadFile(filepath.Join(base, "out", "subtitle.ass"))
	if err != nil {
		t.Fatalf("read karaoke track: %v", err)
	}
	if !strings.Contains(string(data), "Style: Default,Arial,45,&H0000FF00,") {
		t.Errorf("override missing from style line:\n%s", data)
	}
}

func TestAlignCommandJSON(t *testing.T) {
	base := t.TempDir()
	transcriptPath, sentencesPath, configPath := writeFixtures(t, base)

	out := runCommand(t,
		"align",
		"--config", configPath,
		"--transcript", transcriptPath,
		"--sentences", sentencesPath,
		"--json",
		"--no-karaoke",
	)
	if !strings.Contains(out, `"matched": 1`) {
		t.Errorf("json summary missing matched count:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(base, "out", "subtitle.ass")); !os.IsNotExist(err) {
		t.Error("karaoke track should be skipped with --no-karaoke")
	}
}

func TestStylesCommand(t *testing.T) {
	out := runCommand(t, "styles")
	for _, preset := range []string{"bbc", "documentary", "premium_orange", "young_vibrant"} {
		if !strings.Contains(out, preset) {
			t.Errorf("styles table missing %q:\n%s", preset, out)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out := runCommand(t, "config", "init", "--path", target)
	if !strings.Contains(out, target) {
		t.Errorf("init output missing path:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// Second init without --overwrite must refuse.
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for existing config")
	}
}
