package layout

import (
	"fmt"
	"strings"

	"github.com/salescope/reportkit/model"
	"github.com/salescope/reportkit/pages"
)

func (p *pass) placeHeading(sec *model.Section, h *model.Heading) error {
	font := p.cfg.headingFont(h.Level)
	lineH := font.Size * 1.2

	lines, err := wrapText(p.m, h.Text, font, p.geom.ContentWidth())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	if h.Level <= 2 {
		p.space(font.Size * 0.4)
	} else {
		p.space(font.Size * 0.3)
	}

	// Headings are atomic: move whole to a fresh page when they do not
	// fit. A heading taller than the page itself degrades to a line-level
	// split so placement terminates.
	total := float64(len(lines)) * lineH
	if total > p.geom.ContentHeight()+eps {
		p.warnf("heading %q taller than a page; split across pages", firstOf(lines))
	} else if total > p.remaining()+eps {
		ok, err := p.breakPage()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	for _, line := range lines {
		text := line
		ok, err := p.placeUnit(sec, lineH, func(top float64) {
			p.cur.Append(pages.Text(p.geom.Margin.Left, baseline(top, lineH), text, font))
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	p.space(font.Size * 0.2)
	return nil
}

func (p *pass) placeParagraph(sec *model.Section, para *model.Paragraph) error {
	font := p.cfg.paragraphFont(para.Style)
	lineH := p.geom.LineHeight

	lines, err := wrapText(p.m, para.Text, font, p.geom.ContentWidth())
	if err != nil {
		return err
	}

	for _, line := range lines {
		text := line
		ok, err := p.placeUnit(sec, lineH, func(top float64) {
			p.cur.Append(pages.Text(p.geom.Margin.Left, baseline(top, lineH), text, font))
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if len(lines) > 0 {
		p.space(p.cfg.ParagraphSpacing)
	}
	return nil
}

// placeList places bullet or numbered items. Each item is one unit: the
// list splits between items, never inside one.
func (p *pass) placeList(sec *model.Section, items []string, ordered bool) error {
	if len(items) == 0 {
		return nil
	}

	font := p.cfg.BodyFont
	lineH := p.geom.LineHeight
	indent := p.cfg.ListIndent
	textWidth := p.geom.ContentWidth() - indent
	if textWidth < 1 {
		textWidth = 1
	}

	for i, item := range items {
		prefix := p.cfg.Bullet
		if ordered {
			prefix = fmt.Sprintf("%d.", i+1)
		}

		lines, err := wrapText(p.m, item, font, textWidth)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			lines = []string{""}
		}

		itemLines := lines
		itemPrefix := prefix
		ok, err := p.placeUnit(sec, float64(len(lines))*lineH, func(top float64) {
			x := p.geom.Margin.Left
			p.cur.Append(pages.Text(x, baseline(top, lineH), itemPrefix, font))
			for j, line := range itemLines {
				if line == "" {
					continue
				}
				p.cur.Append(pages.Text(x+indent, baseline(top+float64(j)*lineH, lineH), line, font))
			}
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	p.space(p.cfg.ParagraphSpacing)
	return nil
}

// placeGrid places key/value pairs in fixed-height cells. Rows may move
// to a new page; an individual cell never splits.
func (p *pass) placeGrid(sec *model.Section, g *model.KeyValueGrid) error {
	if len(g.Pairs) == 0 {
		return nil
	}

	cols := g.ColumnCount
	if cols < 1 {
		cols = 1
	}
	cellH := p.cfg.gridCellHeight(p.geom)
	cellW := p.geom.ContentWidth() / float64(cols)
	pad := p.cfg.CellPadding

	keyFont := p.cfg.BodyFont
	keyFont.Style = "B"
	keyFont.Size -= 2
	valueFont := p.cfg.BodyFont

	inner := cellW - 2*pad
	if inner < 1 {
		inner = 1
	}

	for start := 0; start < len(g.Pairs); start += cols {
		end := start + cols
		if end > len(g.Pairs) {
			end = len(g.Pairs)
		}
		row := g.Pairs[start:end]

		// Truncate cell text up front so measurement errors surface
		// before anything is emitted.
		keys := make([]string, len(row))
		values := make([]string, len(row))
		for i, kv := range row {
			k, err := truncateToWidth(p.m, kv.Key, keyFont, inner)
			if err != nil {
				return err
			}
			v, err := truncateToWidth(p.m, kv.Value, valueFont, inner)
			if err != nil {
				return err
			}
			keys[i], values[i] = k, v
		}

		ok, err := p.placeUnit(sec, cellH, func(top float64) {
			for i := range row {
				x := p.geom.Margin.Left + float64(i)*cellW
				p.cur.Append(
					pages.Rect(x, top, cellW, cellH, false),
					pages.Text(x+pad, baseline(top, cellH/2), keys[i], keyFont),
					pages.Text(x+pad, baseline(top+cellH/2, cellH/2), values[i], valueFont),
				)
			}
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	p.space(p.cfg.ParagraphSpacing)
	return nil
}

// placeTable places a table row by row. Rows split only at row
// boundaries; when RepeatHeaderOnSplit is set the header row is
// re-emitted at the top of each continuation page.
func (p *pass) placeTable(sec *model.Section, t *model.Table) error {
	widths := tableWidths(t, p.geom.ContentWidth())
	if len(widths) == 0 {
		return nil
	}

	lineH := p.geom.LineHeight
	pad := p.cfg.CellPadding
	bodyFont := p.cfg.BodyFont
	headerFont := bodyFont
	headerFont.Style = "B"

	emitRow := func(top float64, wr wrappedRow, font model.FontSpec) {
		x := p.geom.Margin.Left
		for i, cellLines := range wr.cells {
			p.cur.Append(pages.Rect(x, top, widths[i], wr.height, false))
			for j, line := range cellLines {
				if line == "" {
					continue
				}
				p.cur.Append(pages.Text(x+pad, baseline(top+pad+float64(j)*lineH, lineH), line, font))
			}
			x += widths[i]
		}
	}

	var header *wrappedRow
	if len(t.Header) > 0 {
		wr, err := wrapRow(p.m, t.Header, widths, headerFont, lineH, pad)
		if err != nil {
			return err
		}
		header = &wr
		ok, err := p.placeUnit(sec, wr.height, func(top float64) {
			emitRow(top, wr, headerFont)
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	for _, row := range t.Rows {
		wr, err := wrapRow(p.m, row, widths, bodyFont, lineH, pad)
		if err != nil {
			return err
		}

		// Break before the row so a repeated header lands above it on
		// the continuation page. Oversized rows fall through to the
		// force-place path inside placeUnit.
		if wr.height > p.remaining()+eps && wr.height <= p.geom.ContentHeight()+eps {
			ok, err := p.breakPage()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if t.RepeatHeaderOnSplit && header != nil {
				hr := *header
				ok, err := p.placeUnit(sec, hr.height, func(top float64) {
					emitRow(top, hr, headerFont)
				})
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if wr.height > p.remaining()+eps {
					// The repeated header left too little room; clip the
					// row here instead of cascading another break.
					p.mark(sec)
					emitRow(p.y, wr, bodyFont)
					p.warnf("table row clipped after header repeat")
					p.y = p.geom.ContentBottom()
					continue
				}
			}
		}

		rowCopy := wr
		ok, err := p.placeUnit(sec, wr.height, func(top float64) {
			emitRow(top, rowCopy, bodyFont)
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	p.space(p.cfg.ParagraphSpacing)
	return nil
}

// placeTOC renders the table of contents: one fixed-height line per
// listed section with a dotted leader and the section's first page
// number. During the measurement pass the numbers are unknown and a
// placeholder is printed; the entry height never varies, so both passes
// paginate identically.
func (p *pass) placeTOC(sec *model.Section, toc *model.TOC) error {
	title := toc.Title
	if title == "" {
		title = "Contents"
	}
	if err := p.placeHeading(sec, &model.Heading{Level: 2, Text: title}); err != nil {
		return err
	}

	font := p.cfg.BodyFont
	lineH := p.geom.LineHeight
	contentW := p.geom.ContentWidth()

	dotW, err := measure(p.m, ".", font)
	if err != nil {
		return err
	}

	for _, target := range p.doc.Sections {
		if target.Unlisted {
			continue
		}

		num := "?"
		if p.known != nil {
			if page, ok := p.known[target]; ok && page > 0 {
				num = fmt.Sprintf("%d", page)
			}
		}
		numW, err := measure(p.m, num, font)
		if err != nil {
			return err
		}

		titleMax := contentW - numW - 12
		if titleMax < 1 {
			titleMax = 1
		}
		entryTitle, err := truncateToWidth(p.m, target.Title, font, titleMax)
		if err != nil {
			return err
		}
		titleW, err := measure(p.m, entryTitle, font)
		if err != nil {
			return err
		}

		dots := ""
		if dotW > 0 {
			gap := contentW - titleW - numW - 8
			if n := int(gap / dotW); n > 0 {
				dots = strings.Repeat(".", n)
			}
		}

		entryNum := num
		entryDots := dots
		entryText := entryTitle
		entryTitleW := titleW
		entryNumW := numW
		ok, err := p.placeUnit(sec, lineH, func(top float64) {
			y := baseline(top, lineH)
			left := p.geom.Margin.Left
			p.cur.Append(pages.Text(left, y, entryText, font))
			if entryDots != "" {
				p.cur.Append(pages.Text(left+entryTitleW+4, y, entryDots, font))
			}
			p.cur.Append(pages.Text(left+contentW-entryNumW, y, entryNum, font))
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	p.space(p.cfg.ParagraphSpacing)
	return nil
}

func firstOf(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
