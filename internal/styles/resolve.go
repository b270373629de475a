package styles

const (
	landscapeResX = 1920
	landscapeResY = 1080

	portraitFontScale    = 1.5
	portraitSourceMargin = 0.25
	portraitTransMargin  = 0.15
)

// Resolve finalizes the style set for one rendering session. Unknown video
// dimensions fall back to 1920x1080 landscape. Portrait video scales font
// sizes by 1.5 and replaces the vertical margins with fixed fractions of the
// playback height: 0.25 for the source track, 0.15 for the translation.
func Resolve(base TrackStyles, dims *Dimensions) Resolved {
	resolved := Resolved{
		Source:      base.Source,
		Translation: base.Translation,
		PlayResX:    landscapeResX,
		PlayResY:    landscapeResY,
	}

	if dims == nil || !dims.Portrait() {
		return resolved
	}

	resolved.Portrait = true
	resolved.PlayResX = landscapeResY
	resolved.PlayResY = landscapeResX

	resolved.Source.FontSize = int(float64(resolved.Source.FontSize) * portraitFontScale)
	resolved.Source.MarginV = int(portraitSourceMargin * float64(resolved.PlayResY))
	resolved.Translation.FontSize = int(float64(resolved.Translation.FontSize) * portraitFontScale)
	resolved.Translation.MarginV = int(portraitTransMargin * float64(resolved.PlayResY))

	return resolved
}
