package assemble

import "time"

// ScanRecord is the upstream research payload for one target company.
// Fields are plain values with defined zero defaults; the optional-field
// ambiguity of the research pipeline is resolved before this type is
// constructed.
type ScanRecord struct {
	Company     CompanyInfo
	Summary     string // executive summary, may contain embedded HTML
	Market      MarketIntelligence
	Competitors []CompetitorProfile
	Financials  FinancialProjections
	Personas    []BuyerPersona
	GeneratedAt time.Time
}

// CompanyInfo identifies the scanned company.
type CompanyInfo struct {
	Name          string
	Domain        string
	Industry      string
	Headquarters  string
	EmployeeRange string
	FoundedYear   int
}

// MarketIntelligence summarizes the target's market.
type MarketIntelligence struct {
	Overview      string // may contain embedded HTML
	MarketSizeUSD float64
	GrowthRatePct float64
	KeyTrends     []string
}

// CompetitorProfile describes one competitor.
type CompetitorProfile struct {
	Name                string
	Positioning         string
	Strengths           []string
	Weaknesses          []string
	EstimatedRevenueUSD float64
}

// FinancialProjections holds year-over-year projection series. The three
// slices are indexed in parallel.
type FinancialProjections struct {
	Years       []int
	RevenueUSD  []float64
	GrowthPct   []float64
	Assumptions []string
}

// BuyerPersona describes a buying-committee persona.
type BuyerPersona struct {
	Title      string
	Seniority  string
	Department string
	PainPoints []string
	Objections []string
	Channels   []string
}
