package assemble

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/salescope/reportkit/model"
)

// Config controls which synthesized sections the assembler emits.
type Config struct {
	// IncludeCoverPage emits an unlisted title section ahead of the
	// content. Default: true.
	IncludeCoverPage bool

	// IncludeTOC emits an unlisted table-of-contents section after the
	// cover. Default: true.
	IncludeTOC bool

	// Locale selects number formatting for monetary and percentage
	// figures. Default: American English.
	Locale language.Tag
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		IncludeCoverPage: true,
		IncludeTOC:       true,
		Locale:           language.AmericanEnglish,
	}
}

// Assembler builds document trees from upstream scan records.
type Assembler struct {
	config Config
	fmt    *formatter
}

// New creates an assembler with default configuration.
func New() *Assembler {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an assembler with custom configuration.
func NewWithConfig(config Config) *Assembler {
	locale := config.Locale
	if locale == (language.Tag{}) {
		locale = language.AmericanEnglish
	}
	return &Assembler{config: config, fmt: newFormatter(locale)}
}

// Build maps a scan record into a complete report document. It never
// fails: absent fields become labeled placeholders.
func (a *Assembler) Build(rec ScanRecord) *model.Document {
	company := model.Fallback(rec.Company.Name, "company name")

	doc := model.NewDocument(company + " — Sales Intelligence Report")
	doc.Metadata.Subject = "Sales intelligence scan"
	doc.Metadata.CreatedAt = rec.GeneratedAt
	doc.Metadata.Custom["company"] = company

	if a.config.IncludeCoverPage {
		cover := doc.AddSection("Cover")
		cover.Unlisted = true
		cover.Add(
			&model.Heading{Level: 1, Text: doc.Title},
			&model.Paragraph{Text: a.generatedLine(rec), Style: model.StyleCaption},
			&model.Paragraph{Text: model.Fallback(StripHTML(rec.Summary), "executive summary"), Style: model.StyleLead},
		)
	}

	if a.config.IncludeTOC {
		toc := doc.AddSection("Contents")
		toc.Unlisted = true
		toc.Add(&model.TOC{})
	}

	a.addOverview(doc, rec)
	a.addMarket(doc, rec.Market)
	a.addCompetitors(doc, rec.Competitors)
	a.addFinancials(doc, rec.Financials)
	a.addPersonas(doc, rec.Personas)

	return doc
}

func (a *Assembler) generatedLine(rec ScanRecord) string {
	if rec.GeneratedAt.IsZero() {
		return "Generated by Salescope"
	}
	return "Generated by Salescope on " + rec.GeneratedAt.Format("January 2, 2006")
}

func (a *Assembler) addOverview(doc *model.Document, rec ScanRecord) {
	c := rec.Company
	founded := "[founded year unavailable]"
	if c.FoundedYear > 0 {
		founded = fmt.Sprintf("%d", c.FoundedYear)
	}

	sec := doc.AddSection("Company Overview")
	sec.Add(
		&model.Heading{Level: 2, Text: "Company Overview"},
		&model.KeyValueGrid{
			ColumnCount: 2,
			Pairs: []model.KeyValue{
				{Key: "Company", Value: model.Fallback(c.Name, "company name")},
				{Key: "Domain", Value: model.Fallback(c.Domain, "domain")},
				{Key: "Industry", Value: model.Fallback(c.Industry, "industry")},
				{Key: "Headquarters", Value: model.Fallback(c.Headquarters, "headquarters")},
				{Key: "Employees", Value: model.Fallback(c.EmployeeRange, "employee range")},
				{Key: "Founded", Value: founded},
			},
		},
	)
}

func (a *Assembler) addMarket(doc *model.Document, m MarketIntelligence) {
	sec := doc.AddSection("Market Intelligence")
	sec.Add(
		&model.Heading{Level: 2, Text: "Market Intelligence"},
		&model.Paragraph{Text: model.Fallback(StripHTML(m.Overview), "market overview")},
		&model.KeyValueGrid{
			ColumnCount: 2,
			Pairs: []model.KeyValue{
				{Key: "Market size", Value: a.fmt.Money(m.MarketSizeUSD)},
				{Key: "Growth rate", Value: a.fmt.Percent(m.GrowthRatePct)},
			},
		},
	)
	if len(m.KeyTrends) > 0 {
		sec.Add(
			&model.Heading{Level: 3, Text: "Key Trends"},
			&model.BulletList{Items: cleanAll(m.KeyTrends)},
		)
	}
}

func (a *Assembler) addCompetitors(doc *model.Document, competitors []CompetitorProfile) {
	sec := doc.AddSection("Competitive Landscape")
	sec.Add(&model.Heading{Level: 2, Text: "Competitive Landscape"})

	if len(competitors) == 0 {
		sec.Add(&model.Paragraph{Text: "[competitor data unavailable]"})
		return
	}

	rows := make([][]string, 0, len(competitors))
	for _, c := range competitors {
		rows = append(rows, []string{
			model.Fallback(c.Name, "competitor"),
			a.fmt.Money(c.EstimatedRevenueUSD),
			model.Fallback(StripHTML(c.Positioning), "positioning"),
		})
	}
	sec.Add(&model.Table{
		Header:              []string{"Competitor", "Est. Revenue", "Positioning"},
		Rows:                rows,
		ColumnWidths:        []float64{120, 90, 0},
		RepeatHeaderOnSplit: true,
	})

	for _, c := range competitors {
		sec.Add(&model.Heading{Level: 3, Text: model.Fallback(c.Name, "competitor")})
		if len(c.Strengths) > 0 {
			sec.Add(
				&model.Paragraph{Text: "Strengths", Style: model.StyleCaption},
				&model.BulletList{Items: cleanAll(c.Strengths)},
			)
		}
		if len(c.Weaknesses) > 0 {
			sec.Add(
				&model.Paragraph{Text: "Weaknesses", Style: model.StyleCaption},
				&model.BulletList{Items: cleanAll(c.Weaknesses)},
			)
		}
	}
}

func (a *Assembler) addFinancials(doc *model.Document, f FinancialProjections) {
	sec := doc.AddSection("Financial Projections")
	sec.Add(&model.Heading{Level: 2, Text: "Financial Projections"})

	if len(f.Years) == 0 {
		sec.Add(&model.Paragraph{Text: "[financial projections unavailable]"})
		return
	}

	rows := make([][]string, 0, len(f.Years))
	for i, year := range f.Years {
		revenue := "[figure unavailable]"
		if i < len(f.RevenueUSD) {
			revenue = a.fmt.Money(f.RevenueUSD[i])
		}
		growth := "—"
		if i < len(f.GrowthPct) {
			growth = a.fmt.Percent(f.GrowthPct[i])
		}
		rows = append(rows, []string{fmt.Sprintf("%d", year), revenue, growth})
	}
	sec.Add(&model.Table{
		Header:              []string{"Year", "Projected Revenue", "YoY Growth"},
		Rows:                rows,
		ColumnWidths:        []float64{70, 0, 90},
		RepeatHeaderOnSplit: true,
	})

	if len(f.Assumptions) > 0 {
		sec.Add(
			&model.Heading{Level: 3, Text: "Assumptions"},
			&model.NumberedList{Items: cleanAll(f.Assumptions)},
		)
	}
}

func (a *Assembler) addPersonas(doc *model.Document, personas []BuyerPersona) {
	sec := doc.AddSection("Buyer Personas")
	sec.Add(&model.Heading{Level: 2, Text: "Buyer Personas"})

	if len(personas) == 0 {
		sec.Add(&model.Paragraph{Text: "[persona data unavailable]"})
		return
	}

	for _, p := range personas {
		sec.Add(
			&model.Heading{Level: 3, Text: model.Fallback(p.Title, "persona title")},
			&model.KeyValueGrid{
				ColumnCount: 2,
				Pairs: []model.KeyValue{
					{Key: "Seniority", Value: model.Fallback(p.Seniority, "seniority")},
					{Key: "Department", Value: model.Fallback(p.Department, "department")},
				},
			},
		)
		if len(p.PainPoints) > 0 {
			sec.Add(
				&model.Paragraph{Text: "Pain points", Style: model.StyleCaption},
				&model.BulletList{Items: cleanAll(p.PainPoints)},
			)
		}
		if len(p.Objections) > 0 {
			sec.Add(
				&model.Paragraph{Text: "Common objections", Style: model.StyleCaption},
				&model.BulletList{Items: cleanAll(p.Objections)},
			)
		}
		if len(p.Channels) > 0 {
			sec.Add(
				&model.Paragraph{Text: "Preferred channels", Style: model.StyleCaption},
				&model.BulletList{Items: cleanAll(p.Channels)},
			)
		}
	}
}

// cleanAll strips markup from each item, dropping entries that end up
// empty.
func cleanAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := StripHTML(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
