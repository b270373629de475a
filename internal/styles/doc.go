// Package styles owns the subtitle style model: per-track SSA-style specs,
// RGBA colors with ASS channel encoding, named presets, and the
// orientation-aware resolution step that adapts fonts and margins for
// portrait video.
package styles
