package styles

// Spec describes one subtitle track's visual style with the fields an SSA
// style line carries. BackColor only applies when BorderStyle is 3 (opaque
// box); it stays nil otherwise.
type Spec struct {
	FontName       string
	FontSize       int
	Bold           bool
	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color
	BackColor      *Color
	BorderStyle    int
	Outline        float64
	Shadow         float64
	Alignment      int
	MarginL        int
	MarginR        int
	MarginV        int
}

// TrackStyles pairs the source-language style with the translation style.
type TrackStyles struct {
	Source      Spec
	Translation Spec
}

// Dimensions is a video frame size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Portrait reports whether the frame is taller than wide.
func (d Dimensions) Portrait() bool {
	return d.Height > d.Width
}

// Resolved is a rendering session's final style set: both track specs plus
// the playback resolution the margins and font sizes were computed against.
type Resolved struct {
	Source      Spec
	Translation Spec
	PlayResX    int
	PlayResY    int
	Portrait    bool
}
