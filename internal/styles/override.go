package styles

import "fmt"

// Override adjusts one track's spec over its preset values. Zero-valued
// fields keep the preset; colors are "#RRGGBB" hex and inherit the preset's
// ASS alpha.
type Override struct {
	FontName       string
	FontSize       int
	Bold           *bool
	PrimaryColor   string
	SecondaryColor string
	OutlineColor   string
	MarginV        int
}

// Apply merges per-track overrides over a preset's track styles.
func Apply(base TrackStyles, source, translation Override) (TrackStyles, error) {
	var err error
	if base.Source, err = source.apply(base.Source); err != nil {
		return TrackStyles{}, fmt.Errorf("source style: %w", err)
	}
	if base.Translation, err = translation.apply(base.Translation); err != nil {
		return TrackStyles{}, fmt.Errorf("translation style: %w", err)
	}
	return base, nil
}

func (o Override) apply(s Spec) (Spec, error) {
	if o.FontName != "" {
		s.FontName = o.FontName
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.Bold != nil {
		s.Bold = *o.Bold
	}
	var err error
	if s.PrimaryColor, err = overrideColor(s.PrimaryColor, o.PrimaryColor); err != nil {
		return Spec{}, fmt.Errorf("primary_color: %w", err)
	}
	if s.SecondaryColor, err = overrideColor(s.SecondaryColor, o.SecondaryColor); err != nil {
		return Spec{}, fmt.Errorf("secondary_color: %w", err)
	}
	if s.OutlineColor, err = overrideColor(s.OutlineColor, o.OutlineColor); err != nil {
		return Spec{}, fmt.Errorf("outline_color: %w", err)
	}
	if o.MarginV > 0 {
		s.MarginV = o.MarginV
	}
	return s, nil
}

// overrideColor parses an override hex value, keeping the current ASS alpha
// so an opaque preset stays opaque and a boxed one keeps its transparency.
func overrideColor(current Color, hex string) (Color, error) {
	if hex == "" {
		return current, nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return Color{}, err
	}
	return c.WithAlpha(current.A), nil
}
