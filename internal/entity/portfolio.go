package entity

// Holding is one position in the portfolio.
type Holding struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Shares    float64 `json:"shares"`
	CostBasis float64 `json:"costBasis"`
}

// HoldingValuation is a holding priced with the latest quote.
type HoldingValuation struct {
	Holding
	CurrentPrice float64    `json:"currentPrice"`
	CurrentValue float64    `json:"currentValue"`
	GainPercent  float64    `json:"gainPercent"`
	DataSource   DataSource `json:"dataSource"`
}

// PortfolioSummary is the valued portfolio returned to the dashboard.
type PortfolioSummary struct {
	Holdings         []HoldingValuation `json:"holdings"`
	TotalValue       float64            `json:"totalValue"`
	TotalCost        float64            `json:"totalCost"`
	TotalGainPercent float64            `json:"totalGainPercent"`
}

// Insight is one personalized suggestion derived from the user profile.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ActionText  string `json:"actionText"`
}

// MarketIndex is a market overview index card.
type MarketIndex struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// MarketOverview is the dashboard market summary: index cards plus the
// latest refreshed snapshots split into gainers and losers.
type MarketOverview struct {
	Indices []MarketIndex   `json:"indices"`
	Gainers []StockSnapshot `json:"gainers"`
	Losers  []StockSnapshot `json:"losers"`
}
