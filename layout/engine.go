package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/salescope/reportkit/canvas"
	"github.com/salescope/reportkit/model"
	"github.com/salescope/reportkit/pages"
)

const eps = 1e-6

// Engine paginates documents. An Engine holds only configuration; all
// render-time state lives in the pass, so a single Engine is safe for
// concurrent use.
type Engine struct {
	config Config
	logger *zap.Logger
}

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxBlockBreaks <= 0 {
		config.MaxBlockBreaks = DefaultConfig().MaxBlockBreaks
	}
	return &Engine{config: config, logger: logger}
}

// Render lays doc out into geom, measuring text with m. It returns the
// ordered page list, the section first-page map, and any warnings.
//
// Rendering is two-pass: the first pass measures placement to learn each
// section's first page, the second renders with exact numbers in the
// table of contents. TOC entries occupy a fixed single line each, so the
// two passes always paginate identically.
func (e *Engine) Render(doc *model.Document, geom model.PageGeometry, m canvas.Measurer) (*pages.Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: nil document")
	}
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	first, err := e.layoutPass(doc, geom, m, nil)
	if err != nil {
		return nil, err
	}

	result, err := e.layoutPass(doc, geom, m, first.SectionPages)
	if err != nil {
		return nil, err
	}

	for _, sec := range doc.Sections {
		if page, ok := result.SectionPages[sec]; ok {
			sec.SetFirstPage(page)
		}
	}
	return result, nil
}

// pass carries the sequentially-threaded cursor state of one layout pass.
type pass struct {
	engine *Engine
	cfg    Config
	doc    *model.Document
	geom   model.PageGeometry
	m      canvas.Measurer
	res    *pages.Result

	cur *pages.Page
	y   float64

	// known maps sections to first pages resolved by a prior pass; nil
	// during the measurement pass.
	known map[*model.Section]int

	// breaksInBlock counts page breaks triggered by the block currently
	// being placed, for the overflow guard.
	breaksInBlock int
	blockClipped  bool
}

func (e *Engine) layoutPass(doc *model.Document, geom model.PageGeometry, m canvas.Measurer, known map[*model.Section]int) (*pages.Result, error) {
	p := &pass{
		engine: e,
		cfg:    e.config,
		doc:    doc,
		geom:   geom,
		m:      m,
		res:    pages.NewResult(),
		known:  known,
	}

	if err := p.newPage(); err != nil {
		return nil, err
	}

	for _, sec := range doc.Sections {
		for _, block := range sec.Blocks {
			p.breaksInBlock = 0
			p.blockClipped = false
			if err := p.placeBlock(sec, block); err != nil {
				return nil, err
			}
		}
	}
	return p.res, nil
}

func (p *pass) placeBlock(sec *model.Section, block model.Block) error {
	switch b := block.(type) {
	case *model.Heading:
		return p.placeHeading(sec, b)
	case *model.Paragraph:
		return p.placeParagraph(sec, b)
	case *model.BulletList:
		return p.placeList(sec, b.Items, false)
	case *model.NumberedList:
		return p.placeList(sec, b.Items, true)
	case *model.KeyValueGrid:
		return p.placeGrid(sec, b)
	case *model.Table:
		return p.placeTable(sec, b)
	case *model.TOC:
		return p.placeTOC(sec, b)
	default:
		return fmt.Errorf("render: unsupported block type %v", block.Type())
	}
}

// newPage closes the current page and opens the next one with its header
// and footer bands, resetting the cursor to the content top.
func (p *pass) newPage() error {
	page := &pages.Page{Number: len(p.res.Pages) + 1}

	label := p.cfg.HeaderLabel
	if label == "" {
		label = p.doc.Title
	}
	ruleY := p.geom.ContentTop() - 6
	page.Header = pages.Band{
		Text: label,
		Commands: []pages.Command{
			pages.Text(p.geom.Margin.Left, ruleY-4, label, p.cfg.HeaderFont),
			pages.Line(p.geom.Margin.Left, ruleY, p.geom.Width-p.geom.Margin.Right, ruleY, 0.5),
		},
	}

	footerText := fmt.Sprintf(p.cfg.FooterFormat, page.Number)
	footerW, err := measure(p.m, footerText, p.cfg.FooterFont)
	if err != nil {
		return err
	}
	footerY := p.geom.ContentBottom() + 14
	page.Footer = pages.Band{
		Text: footerText,
		Commands: []pages.Command{
			pages.Line(p.geom.Margin.Left, p.geom.ContentBottom()+6, p.geom.Width-p.geom.Margin.Right, p.geom.ContentBottom()+6, 0.5),
			pages.Text(p.geom.Margin.Left+(p.geom.ContentWidth()-footerW)/2, footerY, footerText, p.cfg.FooterFont),
		},
	}

	p.res.Pages = append(p.res.Pages, page)
	p.cur = page
	p.y = p.geom.ContentTop()
	return nil
}

// breakPage starts a new page on behalf of the current block, subject to
// the overflow guard. It reports false once the guard trips, after which
// the caller must clip the rest of the block.
func (p *pass) breakPage() (bool, error) {
	if p.breaksInBlock >= p.cfg.MaxBlockBreaks {
		if !p.blockClipped {
			p.warnf("block exceeded %d page breaks; remaining content clipped", p.cfg.MaxBlockBreaks)
			p.blockClipped = true
		}
		return false, nil
	}
	p.breaksInBlock++
	if err := p.newPage(); err != nil {
		return false, err
	}
	return true, nil
}

// mark records the section's first page the moment its first content is
// placed.
func (p *pass) mark(sec *model.Section) {
	if _, ok := p.res.SectionPages[sec]; !ok {
		p.res.SectionPages[sec] = p.cur.Number
	}
}

// remaining returns the vertical space left on the current page.
func (p *pass) remaining() float64 {
	return p.geom.ContentBottom() - p.y
}

// placeUnit places one indivisible unit of height h, breaking the page
// first when it does not fit. A unit taller than the whole usable page is
// force-placed at the top of a fresh page and clipped at the page
// boundary rather than looping. Returns false when the block's break
// budget is exhausted.
func (p *pass) placeUnit(sec *model.Section, h float64, emit func(top float64)) (bool, error) {
	if h > p.remaining()+eps {
		if h > p.geom.ContentHeight()+eps {
			if p.y > p.geom.ContentTop()+eps {
				ok, err := p.breakPage()
				if err != nil || !ok {
					return ok, err
				}
			}
			p.mark(sec)
			emit(p.y)
			p.warnf("unit height %.1f exceeds usable page height %.1f; clipped at page boundary", h, p.geom.ContentHeight())
			p.y = p.geom.ContentBottom()
			return true, nil
		}
		ok, err := p.breakPage()
		if err != nil || !ok {
			return ok, err
		}
	}
	p.mark(sec)
	emit(p.y)
	p.y += h
	return true, nil
}

// space advances the cursor by a cosmetic gap without forcing a page
// break; the gap is swallowed at the bottom of a page.
func (p *pass) space(h float64) {
	if h <= 0 {
		return
	}
	if h > p.remaining() {
		h = p.remaining()
	}
	p.y += h
}

func (p *pass) warnf(format string, args ...any) {
	w := pages.Warning{Page: p.cur.Number, Message: fmt.Sprintf(format, args...)}
	p.res.Warnings = append(p.res.Warnings, w)
	p.engine.logger.Warn("layout warning",
		zap.Int("page", w.Page),
		zap.String("message", w.Message),
	)
}

// baseline converts a line's top Y to its text baseline.
func baseline(top, lineHeight float64) float64 {
	return top + lineHeight*0.75
}
