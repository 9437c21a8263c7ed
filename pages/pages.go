package pages

import (
	"fmt"

	"github.com/salescope/reportkit/model"
)

// CommandKind identifies the primitive a Command represents.
type CommandKind int

const (
	CommandText CommandKind = iota
	CommandLine
	CommandRect
)

func (k CommandKind) String() string {
	switch k {
	case CommandText:
		return "text"
	case CommandLine:
		return "line"
	case CommandRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Command is a single draw primitive at absolute page coordinates.
// The Kind field determines which other fields are meaningful.
type Command struct {
	Kind CommandKind

	// X, Y anchor the primitive: the text baseline origin, the line start,
	// or the rectangle's top-left corner.
	X, Y float64

	// Text fields
	Text string
	Font model.FontSpec

	// Line fields
	X2, Y2    float64
	LineWidth float64

	// Rect fields
	W, H float64
	Fill bool
}

// Text creates a text command.
func Text(x, y float64, text string, font model.FontSpec) Command {
	return Command{Kind: CommandText, X: x, Y: y, Text: text, Font: font}
}

// Line creates a line command.
func Line(x1, y1, x2, y2, width float64) Command {
	return Command{Kind: CommandLine, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: width}
}

// Rect creates a rectangle command.
func Rect(x, y, w, h float64, fill bool) Command {
	return Command{Kind: CommandRect, X: x, Y: y, W: w, H: h, Fill: fill}
}

// Band is a repeated page furniture strip: the header brand line or the
// footer with the page number. Its commands are kept separate from the
// body so encoders can treat furniture differently.
type Band struct {
	Text     string
	Commands []Command
}

// Present reports whether the band carries any content.
func (b Band) Present() bool {
	return b.Text != "" || len(b.Commands) > 0
}

// Page is a single rendered page: its 1-based number, body draw commands
// in placement order, and header/footer bands.
type Page struct {
	Number   int
	Commands []Command
	Header   Band
	Footer   Band
}

// Append adds body commands to the page.
func (p *Page) Append(cmds ...Command) {
	p.Commands = append(p.Commands, cmds...)
}

// AllCommands returns header, body, and footer commands in draw order.
func (p *Page) AllCommands() []Command {
	out := make([]Command, 0, len(p.Header.Commands)+len(p.Commands)+len(p.Footer.Commands))
	out = append(out, p.Header.Commands...)
	out = append(out, p.Commands...)
	out = append(out, p.Footer.Commands...)
	return out
}

// Warning describes a non-fatal condition raised during layout, such as
// the overflow guard clipping an oversized block.
type Warning struct {
	Page    int // 1-based page where the condition arose
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// Result is the complete output of a layout pass.
type Result struct {
	Pages []*Page

	// SectionPages maps each section to the 1-based page its first block
	// was placed on.
	SectionPages map[*model.Section]int

	Warnings []Warning
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		Pages:        make([]*Page, 0),
		SectionPages: make(map[*model.Section]int),
	}
}

// PageCount returns the total number of rendered pages.
func (r *Result) PageCount() int {
	return len(r.Pages)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (r *Result) GetPage(number int) *Page {
	if number < 1 || number > len(r.Pages) {
		return nil
	}
	return r.Pages[number-1]
}

// FirstPageOf returns the first page number recorded for a section, or 0
// if the section was never placed.
func (r *Result) FirstPageOf(s *model.Section) int {
	return r.SectionPages[s]
}
