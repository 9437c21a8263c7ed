package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/salescope/reportkit/canvas"
	"github.com/salescope/reportkit/model"
)

// ErrMeasurement is returned when the canvas backend fails to measure
// text. Measurement failures are deterministic, so the render aborts
// rather than retrying.
var ErrMeasurement = errors.New("text measurement failed")

func measure(m canvas.Measurer, text string, font model.FontSpec) (float64, error) {
	w, err := m.MeasureText(text, font)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMeasurement, text, err)
	}
	return w, nil
}

// wrapText breaks text into lines no wider than width using greedy
// word wrap. Words wider than the full width are hard-broken by rune.
func wrapText(m canvas.Measurer, text string, font model.FontSpec, width float64) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, err := measure(m, candidate, font)
		if err != nil {
			return nil, err
		}
		if w <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// Word alone still too wide: hard-break it.
		ww, err := measure(m, word, font)
		if err != nil {
			return nil, err
		}
		if ww <= width {
			current = word
			continue
		}
		pieces, err := breakWord(m, word, font, width)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines, nil
}

// breakWord splits a single over-wide word into rune runs that each fit
// within width. Every piece keeps at least one rune so the split always
// terminates.
func breakWord(m canvas.Measurer, word string, font model.FontSpec, width float64) ([]string, error) {
	var pieces []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) {
			w, err := measure(m, string(runes[start:end+1]), font)
			if err != nil {
				return nil, err
			}
			if w > width {
				break
			}
			end++
		}
		pieces = append(pieces, string(runes[start:end]))
		start = end
	}
	return pieces, nil
}

// truncateToWidth shortens text with a trailing ellipsis until it fits
// within width. Used for single-line contexts such as TOC entries and
// grid cells.
func truncateToWidth(m canvas.Measurer, text string, font model.FontSpec, width float64) (string, error) {
	w, err := measure(m, text, font)
	if err != nil {
		return "", err
	}
	if w <= width {
		return text, nil
	}

	const ellipsis = "…"
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		w, err = measure(m, candidate, font)
		if err != nil {
			return "", err
		}
		if w <= width {
			return candidate, nil
		}
	}
	return "", nil
}

// tableWidths resolves final column widths: fixed widths are honored and
// the remaining content width is shared equally by auto (zero) columns.
func tableWidths(t *model.Table, contentWidth float64) []float64 {
	cols := t.ColCount()
	if cols == 0 {
		return nil
	}

	widths := make([]float64, cols)
	fixedTotal := 0.0
	autoCount := 0
	for i := 0; i < cols; i++ {
		if i < len(t.ColumnWidths) && t.ColumnWidths[i] > 0 {
			widths[i] = t.ColumnWidths[i]
			fixedTotal += widths[i]
		} else {
			autoCount++
		}
	}
	if autoCount > 0 {
		remaining := contentWidth - fixedTotal
		if remaining < 0 {
			remaining = 0
		}
		share := remaining / float64(autoCount)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// wrappedRow holds the pre-wrapped cell lines and resolved height of one
// table row.
type wrappedRow struct {
	cells  [][]string
	height float64
}

// wrapRow wraps each cell of a row to its column width and computes the
// row height from the tallest cell.
func wrapRow(m canvas.Measurer, row []string, widths []float64, font model.FontSpec, lineHeight, padding float64) (wrappedRow, error) {
	wr := wrappedRow{cells: make([][]string, len(widths))}
	maxLines := 1
	for i := range widths {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		inner := widths[i] - 2*padding
		if inner < 1 {
			inner = 1
		}
		lines, err := wrapText(m, text, font, inner)
		if err != nil {
			return wrappedRow{}, err
		}
		wr.cells[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	wr.height = float64(maxLines)*lineHeight + 2*padding
	return wr, nil
}
