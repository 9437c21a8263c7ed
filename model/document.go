package model

import "time"

// Document represents a complete report as an ordered sequence of sections.
// It is built once and never mutated during layout.
type Document struct {
	Title    string
	Metadata Metadata
	Sections []*Section
}

// Metadata contains document-level information carried through to the
// output artifact.
type Metadata struct {
	Author    string
	Subject   string
	Keywords  []string
	CreatedAt time.Time
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{
		Title: title,
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Sections: make([]*Section, 0),
	}
}

// AddSection appends a section and returns it for further population.
func (d *Document) AddSection(title string) *Section {
	s := &Section{Title: title}
	d.Sections = append(d.Sections, s)
	return s
}

// SectionCount returns the number of sections.
func (d *Document) SectionCount() int {
	return len(d.Sections)
}

// BlockCount returns the total number of blocks across all sections.
func (d *Document) BlockCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Blocks)
	}
	return n
}

// Section is a titled, ordered run of blocks. Its first page number is
// recorded write-once by the layout engine the first time any of its
// blocks is placed.
type Section struct {
	Title  string
	Blocks []Block

	// Unlisted sections (cover page, the table of contents itself) are
	// skipped when a TOC block enumerates the document.
	Unlisted bool

	firstPage int
}

// Add appends blocks to the section and returns the section for chaining.
func (s *Section) Add(blocks ...Block) *Section {
	s.Blocks = append(s.Blocks, blocks...)
	return s
}

// SetFirstPage records the 1-based page on which the section's first block
// was placed. Only the first call has any effect.
func (s *Section) SetFirstPage(page int) {
	if s.firstPage == 0 && page > 0 {
		s.firstPage = page
	}
}

// FirstPage returns the recorded first page number, or 0 if the section
// has not been laid out yet.
func (s *Section) FirstPage() int {
	return s.firstPage
}
