package model

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a page geometry cannot produce a
// usable content area.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Margins defines the non-printable border of a page, in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// PageGeometry describes the fixed page box a document is laid out into.
// It is supplied once per render and treated as immutable.
type PageGeometry struct {
	// Width and Height are the full page dimensions in points.
	Width  float64
	Height float64

	// Margin is the non-printable border on each side.
	Margin Margins

	// LineHeight is the default vertical advance for a line of body text.
	LineHeight float64
}

// LetterGeometry returns the geometry for a US Letter page (612x792 points)
// with one-inch margins.
func LetterGeometry() PageGeometry {
	return PageGeometry{
		Width:      612,
		Height:     792,
		Margin:     Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		LineHeight: 14,
	}
}

// A4Geometry returns the geometry for an A4 page (595x842 points) with
// 25mm margins.
func A4Geometry() PageGeometry {
	return PageGeometry{
		Width:      595,
		Height:     842,
		Margin:     Margins{Top: 71, Bottom: 71, Left: 71, Right: 71},
		LineHeight: 14,
	}
}

// ContentWidth returns the usable horizontal space between the left and
// right margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - g.Margin.Left - g.Margin.Right
}

// ContentHeight returns the usable vertical space between the top and
// bottom margins.
func (g PageGeometry) ContentHeight() float64 {
	return g.Height - g.Margin.Top - g.Margin.Bottom
}

// ContentTop returns the Y coordinate of the top of the content area.
func (g PageGeometry) ContentTop() float64 {
	return g.Margin.Top
}

// ContentBottom returns the Y coordinate of the bottom of the content area.
func (g PageGeometry) ContentBottom() float64 {
	return g.Height - g.Margin.Bottom
}

// Validate checks that the geometry yields a positive content area and a
// positive line height.
func (g PageGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page box %.1fx%.1f", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.ContentWidth() <= 0 {
		return fmt.Errorf("%w: margins leave no horizontal space", ErrInvalidGeometry)
	}
	if g.ContentHeight() <= 0 {
		return fmt.Errorf("%w: margins leave no vertical space", ErrInvalidGeometry)
	}
	if g.LineHeight <= 0 {
		return fmt.Errorf("%w: line height %.2f", ErrInvalidGeometry, g.LineHeight)
	}
	return nil
}

// FontSpec identifies a font face and size for measurement and drawing.
type FontSpec struct {
	Family string  // e.g. "Helvetica"
	Style  string  // "" (regular), "B" (bold), "I" (italic), "BI"
	Size   float64 // point size
}
