package layout

import (
	"go.uber.org/zap"

	"github.com/salescope/reportkit/model"
)

// Config holds typography and guard settings for the engine.
type Config struct {
	// BodyFont is the face used for paragraphs, lists, grids, and table
	// cells. Default: Helvetica 11.
	BodyFont model.FontSpec

	// HeadingSizes is the point-size ladder for heading levels 1-6.
	// Default: 24, 20, 16, 14, 12, 11.
	HeadingSizes [6]float64

	// HeaderLabel is the brand label drawn in the header band of every
	// page. When empty the document title is used.
	HeaderLabel string

	// HeaderFont and FooterFont style the page furniture bands.
	HeaderFont model.FontSpec
	FooterFont model.FontSpec

	// FooterFormat is the fmt pattern for the footer page number.
	// Default: "Page %d".
	FooterFormat string

	// ListIndent is the horizontal offset of list item text, with the
	// bullet or number hanging to its left. Default: 14 points.
	ListIndent float64

	// Bullet is the marker for unordered list items. Default: "•".
	Bullet string

	// CellPadding is the inset between a table cell border and its text.
	// Default: 3 points.
	CellPadding float64

	// GridCellHeight is the fixed height of one key/value grid cell.
	// 0 means twice the geometry line height.
	GridCellHeight float64

	// ParagraphSpacing is the vertical gap after a paragraph.
	// Default: 4 points.
	ParagraphSpacing float64

	// MaxBlockBreaks bounds how many page breaks a single block may
	// trigger before the engine clips it and moves on. Default: 64.
	MaxBlockBreaks int

	// Logger receives structured records for warning conditions (clipped
	// blocks, tripped break guards). nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		BodyFont:         model.FontSpec{Family: "Helvetica", Size: 11},
		HeadingSizes:     [6]float64{24, 20, 16, 14, 12, 11},
		HeaderFont:       model.FontSpec{Family: "Helvetica", Style: "B", Size: 9},
		FooterFont:       model.FontSpec{Family: "Helvetica", Size: 8},
		FooterFormat:     "Page %d",
		ListIndent:       14,
		Bullet:           "•",
		CellPadding:      3,
		ParagraphSpacing: 4,
		MaxBlockBreaks:   64,
	}
}

// headingFont returns the font for a heading level, clamped to 1-6.
func (c Config) headingFont(level int) model.FontSpec {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return model.FontSpec{
		Family: c.BodyFont.Family,
		Style:  "B",
		Size:   c.HeadingSizes[level-1],
	}
}

// paragraphFont returns the font for a paragraph style.
func (c Config) paragraphFont(style model.ParagraphStyle) model.FontSpec {
	f := c.BodyFont
	switch style {
	case model.StyleLead:
		f.Size += 2
	case model.StyleCaption:
		f.Size -= 2
		f.Style = "I"
	}
	return f
}

// gridCellHeight resolves the configured or derived grid cell height.
func (c Config) gridCellHeight(geom model.PageGeometry) float64 {
	if c.GridCellHeight > 0 {
		return c.GridCellHeight
	}
	return 2 * geom.LineHeight
}
