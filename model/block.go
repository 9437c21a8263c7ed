package model

// BlockType identifies the concrete kind of a block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeBulletList
	BlockTypeNumberedList
	BlockTypeKeyValueGrid
	BlockTypeTable
	BlockTypeTOC
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "Heading"
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeBulletList:
		return "BulletList"
	case BlockTypeNumberedList:
		return "NumberedList"
	case BlockTypeKeyValueGrid:
		return "KeyValueGrid"
	case BlockTypeTable:
		return "Table"
	case BlockTypeTOC:
		return "TOC"
	default:
		return "Unknown"
	}
}

// Block is the interface implemented by all content blocks.
type Block interface {
	Type() BlockType

	// Splittable reports whether the block's internal units (wrapped
	// lines, list items, rows) may be divided across a page boundary.
	Splittable() bool
}

// ParagraphStyle selects the body-text treatment of a paragraph.
type ParagraphStyle int

const (
	StyleNormal ParagraphStyle = iota
	StyleLead                  // slightly larger opening paragraph
	StyleCaption               // smaller annotation text
)

func (s ParagraphStyle) String() string {
	switch s {
	case StyleLead:
		return "lead"
	case StyleCaption:
		return "caption"
	default:
		return "normal"
	}
}

// Heading is a section or subsection title. Headings are atomic: they are
// never divided across pages under normal placement.
type Heading struct {
	Level int // 1-6
	Text  string
}

func (h *Heading) Type() BlockType  { return BlockTypeHeading }
func (h *Heading) Splittable() bool { return false }

// Paragraph is a run of flowing text, wrapped greedily at the content
// width and splittable at line boundaries.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

func (p *Paragraph) Type() BlockType  { return BlockTypeParagraph }
func (p *Paragraph) Splittable() bool { return true }

// BulletList is an unordered list, splittable at item boundaries.
type BulletList struct {
	Items []string
}

func (l *BulletList) Type() BlockType  { return BlockTypeBulletList }
func (l *BulletList) Splittable() bool { return true }

// NumberedList is an ordered list, splittable at item boundaries.
// Numbering continues across a page break.
type NumberedList struct {
	Items []string
}

func (l *NumberedList) Type() BlockType  { return BlockTypeNumberedList }
func (l *NumberedList) Splittable() bool { return true }

// KeyValue is a single labeled value in a grid.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValueGrid lays labeled values out in fixed-height cells across
// ColumnCount columns. Rows may move to a new page but an individual cell
// is atomic.
type KeyValueGrid struct {
	Pairs       []KeyValue
	ColumnCount int
}

func (g *KeyValueGrid) Type() BlockType  { return BlockTypeKeyValueGrid }
func (g *KeyValueGrid) Splittable() bool { return true }

// RowCount returns the number of grid rows for the configured column count.
func (g *KeyValueGrid) RowCount() int {
	cols := g.ColumnCount
	if cols < 1 {
		cols = 1
	}
	return (len(g.Pairs) + cols - 1) / cols
}

// Table is a tabular block, splittable at row boundaries only. When
// RepeatHeaderOnSplit is set the header row is re-emitted at the top of
// each continuation page.
type Table struct {
	Header []string
	Rows   [][]string

	// ColumnWidths are fixed widths in points; 0 means the column shares
	// the remaining content width equally with other auto columns.
	ColumnWidths []float64

	RepeatHeaderOnSplit bool
}

func (t *Table) Type() BlockType  { return BlockTypeTable }
func (t *Table) Splittable() bool { return true }

// ColCount returns the number of columns, preferring the header row.
func (t *Table) ColCount() int {
	if len(t.Header) > 0 {
		return len(t.Header)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

// TOC marks where the table of contents is rendered. The layout engine
// resolves one entry per listed section, with page numbers measured during
// the first layout pass.
type TOC struct {
	Title string
}

func (t *TOC) Type() BlockType  { return BlockTypeTOC }
func (t *TOC) Splittable() bool { return true }

// Fallback returns value unless it is empty, in which case a labeled
// placeholder is substituted. Builders use it so that absent upstream data
// never propagates as an error into layout.
func Fallback(value, label string) string {
	if value == "" {
		return "[" + label + " unavailable]"
	}
	return value
}
