package canvas

import "github.com/salescope/reportkit/model"

// Fixed is a deterministic measurer that charges every rune the same
// fraction of the font size. It needs no font files, which makes layout
// results reproducible across environments; tests and previews use it.
type Fixed struct {
	// Advance is the width of one rune as a fraction of the font size.
	Advance float64
}

// NewFixed creates a Fixed measurer with the default advance of half the
// font size, roughly matching an average proportional face.
func NewFixed() *Fixed {
	return &Fixed{Advance: 0.5}
}

// MeasureText returns len(text in runes) * Advance * font size. It never
// fails.
func (f *Fixed) MeasureText(text string, font model.FontSpec) (float64, error) {
	advance := f.Advance
	if advance <= 0 {
		advance = 0.5
	}
	n := 0
	for range text {
		n++
	}
	return float64(n) * advance * font.Size, nil
}
