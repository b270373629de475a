package styles

import (
	"fmt"
	"sort"
)

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "premium_orange"

func boxColor(c Color) *Color {
	return &c
}

var presets = map[string]TrackStyles{
	"young_vibrant": {
		Source: Spec{
			FontName:       "HarmonyOS Sans SC Bold",
			FontSize:       52,
			Bold:           true,
			PrimaryColor:   RGB(255, 255, 0),
			SecondaryColor: RGB(255, 255, 255),
			OutlineColor:   RGBA(0, 0, 0, 100),
			BorderStyle:    1,
			Outline:        3,
			Shadow:         2,
			Alignment:      2,
			MarginV:        150,
		},
		Translation: Spec{
			FontName:       "HarmonyOS Sans SC Bold",
			FontSize:       75,
			Bold:           true,
			PrimaryColor:   RGB(255, 255, 255),
			SecondaryColor: RGB(200, 200, 200),
			OutlineColor:   RGBA(255, 100, 0, 50),
			BorderStyle:    1,
			Outline:        4,
			Shadow:         0,
			Alignment:      2,
			MarginV:        50,
		},
	},
	"bbc": {
		Source: Spec{
			FontName:       "Arial",
			FontSize:       50,
			Bold:           true,
			PrimaryColor:   RGB(255, 212, 0),
			SecondaryColor: RGB(255, 255, 255),
			OutlineColor:   RGBA(0, 0, 0, 30),
			BackColor:      boxColor(RGBA(0, 0, 0, 30)),
			BorderStyle:    3,
			Outline:        4.5,
			Shadow:         0,
			Alignment:      2,
			MarginV:        185,
		},
		Translation: Spec{
			FontName:       "Source Han Sans SC",
			FontSize:       82,
			Bold:           true,
			PrimaryColor:   RGB(255, 255, 255),
			SecondaryColor: RGB(190, 190, 190),
			OutlineColor:   RGBA(0, 0, 0, 30),
			BackColor:      boxColor(RGBA(0, 0, 0, 30)),
			BorderStyle:    3,
			Outline:        4.5,
			Shadow:         0,
			Alignment:      2,
			MarginV:        70,
		},
	},
	"documentary": {
		Source: Spec{
			FontName:       "Noto Sans SC Regular",
			FontSize:       38,
			Bold:           false,
			PrimaryColor:   RGB(240, 240, 240),
			SecondaryColor: RGB(150, 150, 150),
			OutlineColor:   RGBA(0, 0, 0, 180),
			BorderStyle:    1,
			Outline:        1.5,
			Shadow:         1,
			Alignment:      2,
			MarginV:        120,
		},
		Translation: Spec{
			FontName:       "Noto Sans SC-Bold",
			FontSize:       58,
			Bold:           true,
			PrimaryColor:   RGB(255, 255, 255),
			SecondaryColor: RGB(200, 200, 200),
			OutlineColor:   RGBA(0, 0, 0, 200),
			BorderStyle:    1,
			Outline:        2,
			Shadow:         1.5,
			Alignment:      2,
			MarginV:        50,
		},
	},
	"premium_orange": {
		Source: Spec{
			FontName:       "HarmonyOS Sans SC Bold",
			FontSize:       45,
			Bold:           true,
			PrimaryColor:   RGB(255, 255, 255),
			SecondaryColor: RGB(200, 200, 200),
			OutlineColor:   RGBA(0, 0, 0, 150),
			BorderStyle:    1,
			Outline:        2.5,
			Shadow:         2,
			Alignment:      2,
			MarginV:        185,
		},
		Translation: Spec{
			FontName:       "HarmonyOS Sans SC Bold",
			FontSize:       85,
			Bold:           true,
			PrimaryColor:   RGB(255, 165, 0),
			SecondaryColor: RGB(200, 200, 200),
			OutlineColor:   RGBA(0, 0, 0, 150),
			BorderStyle:    1,
			Outline:        4.0,
			Shadow:         3,
			Alignment:      2,
			MarginV:        70,
		},
	},
}

// Preset looks up a named style preset.
func Preset(name string) (TrackStyles, error) {
	ts, ok := presets[name]
	if !ok {
		return TrackStyles{}, fmt.Errorf("unknown style preset %q (available: %v)", name, PresetNames())
	}
	return ts, nil
}

// PresetNames lists the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
