package canvas

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/salescope/reportkit/model"
)

// GoFont measures text with real glyph metrics from the Go font family.
// Faces are created lazily per style and size and cached; a GoFont value
// is safe for concurrent use by multiple renders.
type GoFont struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	style string
	size  float64
}

// NewGoFont creates a measurer over the Go font family. The regular,
// bold, italic, and bold-italic faces are parsed up front so that later
// measurement cannot fail on malformed font data.
func NewGoFont() (*GoFont, error) {
	sources := map[string][]byte{
		"":   goregular.TTF,
		"B":  gobold.TTF,
		"I":  goitalic.TTF,
		"BI": gobolditalic.TTF,
	}

	g := &GoFont{
		fonts: make(map[string]*opentype.Font, len(sources)),
		faces: make(map[faceKey]font.Face),
	}
	for style, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parsing go font %q: %w", style, err)
		}
		g.fonts[style] = f
	}
	return g, nil
}

// MeasureText returns the advance width of text in points at the given
// font size. Unknown style strings fall back to the regular face.
func (g *GoFont) MeasureText(text string, spec model.FontSpec) (float64, error) {
	face, err := g.face(spec)
	if err != nil {
		return 0, err
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, nil
}

func (g *GoFont) face(spec model.FontSpec) (font.Face, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	style := spec.Style
	if _, ok := g.fonts[style]; !ok {
		style = ""
	}
	key := faceKey{style: style, size: spec.Size}
	if face, ok := g.faces[key]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(g.fonts[style], &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face at %.1fpt: %w", spec.Size, err)
	}
	g.faces[key] = face
	return face, nil
}
