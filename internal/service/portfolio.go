package service

import (
	"context"
	"math"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"
)

// seedHoldings is the demo portfolio shown on the holdings page.
var seedHoldings = []entity.Holding{
	{Symbol: "AAPL", Name: "Apple Inc.", Shares: 50, CostBasis: 150.25},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Shares: 25, CostBasis: 280.10},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Shares: 30, CostBasis: 125.85},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Shares: 40, CostBasis: 110.30},
	{Symbol: "TSLA", Name: "Tesla Inc.", Shares: 15, CostBasis: 220.75},
}

// PortfolioService values the holdings table with current quotes.
type PortfolioService interface {
	GetSummary(ctx context.Context) entity.PortfolioSummary
}

// NewPortfolioService creates a portfolio service over the seed holdings.
func NewPortfolioService(quotes QuoteService, log *logger.Logger) PortfolioService {
	return &portfolioService{
		quotes:   quotes,
		holdings: seedHoldings,
		log:      log,
	}
}

type portfolioService struct {
	quotes   QuoteService
	holdings []entity.Holding
	log      *logger.Logger
}

// GetSummary prices every holding through the quote service. Quote
// fallbacks degrade individual prices to synthetic data but the summary is
// always complete.
func (s *portfolioService) GetSummary(ctx context.Context) entity.PortfolioSummary {
	summary := entity.PortfolioSummary{
		Holdings: make([]entity.HoldingValuation, 0, len(s.holdings)),
	}

	for _, holding := range s.holdings {
		snapshot := s.quotes.GetQuote(ctx, holding.Symbol)

		value := holding.Shares * snapshot.CurrentPrice
		cost := holding.Shares * holding.CostBasis

		valuation := entity.HoldingValuation{
			Holding:      holding,
			CurrentPrice: snapshot.CurrentPrice,
			CurrentValue: round2(value),
			DataSource:   snapshot.DataSource,
		}
		if cost > 0 {
			valuation.GainPercent = round2((value - cost) / cost * 100)
		}

		summary.Holdings = append(summary.Holdings, valuation)
		summary.TotalValue += value
		summary.TotalCost += cost
	}

	if summary.TotalCost > 0 {
		summary.TotalGainPercent = round2((summary.TotalValue - summary.TotalCost) / summary.TotalCost * 100)
	}
	summary.TotalValue = round2(summary.TotalValue)
	summary.TotalCost = round2(summary.TotalCost)

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
