package canvas

import "github.com/salescope/reportkit/model"

// Measurer is the measurement half of the canvas capability. MeasureText
// returns the rendered width of text in points for the given font, or an
// error if the backend cannot measure it. Measurement failures are
// deterministic and are not retried.
type Measurer interface {
	MeasureText(text string, font model.FontSpec) (float64, error)
}

// Drawer is the drawing half of the canvas capability. Coordinates are
// absolute page positions with the origin at the top-left corner.
type Drawer interface {
	DrawText(x, y float64, text string, font model.FontSpec)
	DrawLine(x1, y1, x2, y2, width float64)
	DrawRect(x, y, w, h float64, fill bool)
}

// Canvas is a complete drawing surface: it measures text and accepts draw
// primitives. Concrete output encoders implement this.
type Canvas interface {
	Measurer
	Drawer
}
