// Package export renders a layout result into plain-text inspection
// formats. These are debugging and golden-test surfaces, not the final
// artifact encoding, which is owned by an external backend.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/salescope/reportkit/pages"
)

// Format defines the available export formats.
type Format int

const (
	// FormatText exports each page's text commands in placement order.
	FormatText Format = iota
	// FormatMarkdown exports pages under per-page headings.
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// Text returns the text content of every page in placement order, with
// header and footer band text included and pages separated by form feeds.
func Text(r *pages.Result) string {
	var sb strings.Builder
	writeText(&sb, r)
	return sb.String()
}

// Markdown returns the result as markdown with one heading per page.
func Markdown(r *pages.Result) string {
	var sb strings.Builder
	for _, page := range r.Pages {
		fmt.Fprintf(&sb, "## Page %d\n\n", page.Number)
		if page.Header.Present() {
			fmt.Fprintf(&sb, "> %s\n\n", page.Header.Text)
		}
		for _, cmd := range page.Commands {
			if cmd.Kind == pages.CommandText && cmd.Text != "" {
				sb.WriteString(cmd.Text)
				sb.WriteByte('\n')
			}
		}
		if page.Footer.Present() {
			fmt.Fprintf(&sb, "\n> %s\n", page.Footer.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write streams the chosen format to w.
func Write(w io.Writer, r *pages.Result, format Format) error {
	var out string
	switch format {
	case FormatMarkdown:
		out = Markdown(r)
	default:
		out = Text(r)
	}
	_, err := io.WriteString(w, out)
	return err
}

func writeText(sb *strings.Builder, r *pages.Result) {
	for i, page := range r.Pages {
		if i > 0 {
			sb.WriteByte('\f')
		}
		if page.Header.Present() {
			sb.WriteString(page.Header.Text)
			sb.WriteByte('\n')
		}
		for _, cmd := range page.Commands {
			if cmd.Kind == pages.CommandText && cmd.Text != "" {
				sb.WriteString(cmd.Text)
				sb.WriteByte('\n')
			}
		}
		if page.Footer.Present() {
			sb.WriteString(page.Footer.Text)
			sb.WriteByte('\n')
		}
	}
}
