package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/salescope/reportkit/canvas"
	"github.com/salescope/reportkit/model"
	"github.com/salescope/reportkit/pages"
)

// testGeometry returns a page with a 400x700 content area and a 20 point
// line height: margins 50 on all sides, page box 500x800.
func testGeometry() model.PageGeometry {
	return model.PageGeometry{
		Width:      500,
		Height:     800,
		Margin:     model.Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		LineHeight: 20,
	}
}

// singleSectionDoc builds a document with one section holding the given
// blocks.
func singleSectionDoc(title string, blocks ...model.Block) *model.Document {
	doc := model.NewDocument("Test Report")
	doc.AddSection(title).Add(blocks...)
	return doc
}

// textCommands returns the body text commands of a page.
func textCommands(p *pages.Page) []pages.Command {
	var out []pages.Command
	for _, cmd := range p.Commands {
		if cmd.Kind == pages.CommandText {
			out = append(out, cmd)
		}
	}
	return out
}

// pageOfText returns the 1-based page on which a body text command with
// exactly the given text appears, or 0.
func pageOfText(res *pages.Result, text string) int {
	for _, page := range res.Pages {
		for _, cmd := range textCommands(page) {
			if cmd.Text == text {
				return page.Number
			}
		}
	}
	return 0
}

func TestNewUsesDefaults(t *testing.T) {
	e := New()
	if e == nil {
		t.Fatal("New returned nil")
	}
	if e.config.MaxBlockBreaks != 64 {
		t.Errorf("MaxBlockBreaks = %d, want 64", e.config.MaxBlockBreaks)
	}
	if e.logger == nil {
		t.Error("expected non-nil logger")
	}
}

func TestRenderNilDocument(t *testing.T) {
	if _, err := New().Render(nil, testGeometry(), canvas.NewFixed()); err == nil {
		t.Fatal("expected error for nil document")
	}
}

func TestRenderInvalidGeometry(t *testing.T) {
	geom := testGeometry()
	geom.Margin.Top = 500 // leaves no vertical space

	_, err := New().Render(model.NewDocument("x"), geom, canvas.NewFixed())
	if !errors.Is(err, model.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestEmptyDocumentSinglePage(t *testing.T) {
	res, err := New().Render(model.NewDocument("Empty"), testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() != 1 {
		t.Errorf("PageCount = %d, want 1", res.PageCount())
	}
	page := res.GetPage(1)
	if page == nil {
		t.Fatal("page 1 missing")
	}
	if !page.Header.Present() {
		t.Error("header band missing")
	}
	if page.Footer.Text != "Page 1" {
		t.Errorf("footer text = %q, want %q", page.Footer.Text, "Page 1")
	}
}

// 700 points of content at 20 points per item holds exactly 35 items
// before the page breaks.
func TestListExactPageCapacity(t *testing.T) {
	items := make([]string, 40)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}
	doc := singleSectionDoc("Items", &model.BulletList{Items: items})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", res.PageCount())
	}

	countBullets := func(p *pages.Page) int {
		n := 0
		for _, cmd := range textCommands(p) {
			if cmd.Text == "•" {
				n++
			}
		}
		return n
	}
	if got := countBullets(res.GetPage(1)); got != 35 {
		t.Errorf("page 1 item count = %d, want 35", got)
	}
	if got := countBullets(res.GetPage(2)); got != 5 {
		t.Errorf("page 2 item count = %d, want 5", got)
	}
}

// filledParagraph repeats an eight-character word, sized so the Fixed
// measurer wraps exactly eight words per line at 400 points and body
// size 11.
func filledParagraph(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = "wordwrap"
	}
	return strings.Join(parts, " ")
}

func TestThreeParagraphsOverflowToSecondPage(t *testing.T) {
	// 15 lines per paragraph, 45 lines total against a 35-line page.
	para := filledParagraph(120)
	doc := model.NewDocument("Overflow")
	sec := doc.AddSection("Body")
	sec.Add(
		&model.Paragraph{Text: para},
		&model.Paragraph{Text: para},
		&model.Paragraph{Text: para},
	)

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", res.PageCount())
	}
	if !res.GetPage(2).Header.Present() {
		t.Error("second page header band missing")
	}
	if sec.FirstPage() != 1 {
		t.Errorf("section first page = %d, want 1", sec.FirstPage())
	}
}

func TestWrappedLinesNeverExceedContentWidth(t *testing.T) {
	m := canvas.NewFixed()
	geom := testGeometry()
	doc := singleSectionDoc("Wrap",
		&model.Paragraph{Text: filledParagraph(300)},
		&model.Paragraph{Text: "short one"},
	)

	res, err := New().Render(doc, geom, m)
	if err != nil {
		t.Fatal(err)
	}
	font := DefaultConfig().BodyFont
	for _, page := range res.Pages {
		for _, cmd := range textCommands(page) {
			if cmd.Font != font {
				continue
			}
			w, err := m.MeasureText(cmd.Text, font)
			if err != nil {
				t.Fatal(err)
			}
			if w > geom.ContentWidth() {
				t.Errorf("page %d line %q measures %.1f, wider than %.1f",
					page.Number, cmd.Text, w, geom.ContentWidth())
			}
		}
	}
}

// A split list must keep every item exactly once, in order.
func TestSplitListNoLossNoDuplication(t *testing.T) {
	items := make([]string, 80)
	for i := range items {
		items[i] = fmt.Sprintf("entry-%03d", i+1)
	}
	doc := singleSectionDoc("Entries", &model.NumberedList{Items: items})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}

	indentX := testGeometry().Margin.Left + DefaultConfig().ListIndent
	var placed []string
	for _, page := range res.Pages {
		for _, cmd := range textCommands(page) {
			if cmd.X == indentX {
				placed = append(placed, cmd.Text)
			}
		}
	}
	if diff := cmp.Diff(items, placed); diff != "" {
		t.Errorf("placed items mismatch (-want +got):\n%s", diff)
	}
}

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row-%02d", i+1), "val", "detail"}
	}
	return rows
}

func TestTableSplitsAtRowBoundaries(t *testing.T) {
	doc := singleSectionDoc("Table", &model.Table{
		Header:              []string{"Name", "Value", "Detail"},
		Rows:                makeRows(40),
		RepeatHeaderOnSplit: true,
	})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() < 2 {
		t.Fatalf("PageCount = %d, want >= 2", res.PageCount())
	}

	// Every cell of a row lands on the same page.
	for i := 1; i <= 40; i++ {
		label := fmt.Sprintf("row-%02d", i)
		page := pageOfText(res, label)
		if page == 0 {
			t.Fatalf("row %q not placed", label)
		}
		found := false
		for _, cmd := range textCommands(res.GetPage(page)) {
			if cmd.Text == "detail" || cmd.Text == "val" {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("row %q split across pages", label)
		}
	}

	// The header row repeats on every page the table touches.
	for _, page := range res.Pages {
		headerSeen := false
		rowSeen := false
		for _, cmd := range textCommands(page) {
			if cmd.Text == "Name" {
				headerSeen = true
			}
			if strings.HasPrefix(cmd.Text, "row-") {
				rowSeen = true
			}
		}
		if rowSeen && !headerSeen {
			t.Errorf("page %d has table rows but no repeated header", page.Number)
		}
	}
}

func TestTableHeaderNotRepeatedWhenDisabled(t *testing.T) {
	doc := singleSectionDoc("Table", &model.Table{
		Header: []string{"Name", "Value", "Detail"},
		Rows:   makeRows(40),
	})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	headerPages := 0
	for _, page := range res.Pages {
		for _, cmd := range textCommands(page) {
			if cmd.Text == "Name" {
				headerPages++
				break
			}
		}
	}
	if headerPages != 1 {
		t.Errorf("header appears on %d pages, want 1", headerPages)
	}
}

func TestHeadingMovesWholeToNextPage(t *testing.T) {
	// 34 of 35 lines used, then a heading that cannot fit in the last
	// line of space moves whole to page 2.
	items := make([]string, 34)
	for i := range items {
		items[i] = fmt.Sprintf("filler %d", i+1)
	}
	doc := model.NewDocument("Atomic")
	doc.AddSection("Body").Add(
		&model.BulletList{Items: items},
		&model.Heading{Level: 3, Text: "Atomic Heading"},
	)

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if got := pageOfText(res, "Atomic Heading"); got != 2 {
		t.Errorf("heading on page %d, want 2", got)
	}
}

func TestGridCellsStayWhole(t *testing.T) {
	pairs := make([]model.KeyValue, 60)
	for i := range pairs {
		pairs[i] = model.KeyValue{
			Key:   fmt.Sprintf("key-%02d", i+1),
			Value: fmt.Sprintf("value-%02d", i+1),
		}
	}
	doc := singleSectionDoc("Grid", &model.KeyValueGrid{Pairs: pairs, ColumnCount: 2})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() < 2 {
		t.Fatalf("PageCount = %d, want >= 2", res.PageCount())
	}
	for i := 1; i <= 60; i++ {
		keyPage := pageOfText(res, fmt.Sprintf("key-%02d", i))
		valuePage := pageOfText(res, fmt.Sprintf("value-%02d", i))
		if keyPage == 0 || keyPage != valuePage {
			t.Errorf("pair %d split: key on page %d, value on page %d", i, keyPage, valuePage)
		}
	}
}

func TestTOCNumbersMatchSectionFirstPages(t *testing.T) {
	doc := model.NewDocument("TOC Report")
	contents := doc.AddSection("Contents")
	contents.Unlisted = true
	contents.Add(&model.TOC{})

	filler := filledParagraph(240) // 30 lines
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		doc.AddSection(title).Add(
			&model.Heading{Level: 2, Text: title},
			&model.Paragraph{Text: filler},
		)
	}

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}

	for _, sec := range doc.Sections {
		if sec.Unlisted {
			continue
		}
		want := res.SectionPages[sec]
		if want == 0 {
			t.Fatalf("section %q never placed", sec.Title)
		}
		if sec.FirstPage() != want {
			t.Errorf("section %q FirstPage = %d, want %d", sec.Title, sec.FirstPage(), want)
		}

		// Find the TOC entry line and check the printed number.
		tocPage := res.GetPage(res.SectionPages[contents])
		var entryY float64
		for _, cmd := range textCommands(tocPage) {
			if cmd.Text == sec.Title && cmd.Font == DefaultConfig().BodyFont {
				entryY = cmd.Y
			}
		}
		if entryY == 0 {
			t.Fatalf("no TOC entry for %q", sec.Title)
		}
		printed := ""
		for _, cmd := range textCommands(tocPage) {
			if cmd.Y == entryY && cmd.Text != sec.Title && !strings.HasPrefix(cmd.Text, ".") {
				printed = cmd.Text
			}
		}
		if printed != fmt.Sprintf("%d", want) {
			t.Errorf("TOC prints %q for %q, want %d", printed, sec.Title, want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() *model.Document {
		doc := model.NewDocument("Deterministic")
		contents := doc.AddSection("Contents")
		contents.Unlisted = true
		contents.Add(&model.TOC{})
		doc.AddSection("Body").Add(
			&model.Heading{Level: 2, Text: "Body"},
			&model.Paragraph{Text: filledParagraph(200)},
			&model.Table{Header: []string{"A", "B"}, Rows: makeRows(10), RepeatHeaderOnSplit: true},
		)
		return doc
	}

	engine := New()
	first, err := engine.Render(build(), testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Render(build(), testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if first.PageCount() != second.PageCount() {
		t.Fatalf("page counts differ: %d vs %d", first.PageCount(), second.PageCount())
	}
	for i := range first.Pages {
		if diff := cmp.Diff(first.Pages[i], second.Pages[i]); diff != "" {
			t.Errorf("page %d differs between renders (-first +second):\n%s", i+1, diff)
		}
	}
}

func TestOverflowGuardClipsRunawayBlock(t *testing.T) {
	config := DefaultConfig()
	config.MaxBlockBreaks = 1

	items := make([]string, 100) // needs two breaks at 35 per page
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}
	doc := singleSectionDoc("Guarded", &model.BulletList{Items: items})

	res, err := NewWithConfig(config).Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if res.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", res.PageCount())
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a clip warning")
	}
	if !strings.Contains(res.Warnings[0].Message, "clipped") {
		t.Errorf("warning = %q, want mention of clipping", res.Warnings[0].Message)
	}
}

func TestOversizedRowForcePlaced(t *testing.T) {
	// A single cell that wraps to far more lines than a page holds.
	giant := filledParagraph(1200)
	doc := singleSectionDoc("Oversized", &model.Table{
		Header: []string{"Name", "Detail"},
		Rows:   [][]string{{"big", giant}},
	})

	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected an oversized-unit warning")
	}
	if got := pageOfText(res, "big"); got == 0 {
		t.Error("oversized row content missing from output")
	}
}

// failingMeasurer returns an error for every measurement.
type failingMeasurer struct{}

func (failingMeasurer) MeasureText(string, model.FontSpec) (float64, error) {
	return 0, errors.New("no metrics for glyph")
}

func TestMeasurementFailureAbortsRender(t *testing.T) {
	doc := singleSectionDoc("Fails", &model.Paragraph{Text: "hello"})
	_, err := New().Render(doc, testGeometry(), failingMeasurer{})
	if !errors.Is(err, ErrMeasurement) {
		t.Fatalf("expected ErrMeasurement, got %v", err)
	}
}

func TestFooterNumbersAreSequential(t *testing.T) {
	doc := singleSectionDoc("Long", &model.Paragraph{Text: filledParagraph(1000)})
	res, err := New().Render(doc, testGeometry(), canvas.NewFixed())
	if err != nil {
		t.Fatal(err)
	}
	for i, page := range res.Pages {
		want := fmt.Sprintf("Page %d", i+1)
		if page.Footer.Text != want {
			t.Errorf("page %d footer = %q, want %q", i+1, page.Footer.Text, want)
		}
	}
}
