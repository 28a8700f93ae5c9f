package service

import (
	"context"
	"testing"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioSummary_ValuesHoldings(t *testing.T) {
	prices := map[string]float64{
		"AAPL": 177.58, "MSFT": 334.12, "GOOGL": 132.97, "AMZN": 132.85, "TSLA": 243.82,
	}
	quotes := &fakeQuoteService{
		getQuote: func(_ context.Context, symbol string) *entity.StockSnapshot {
			return syntheticSnapshot(symbol, prices[symbol], 0)
		},
	}
	svc := NewPortfolioService(quotes, logger.NewNop())

	summary := svc.GetSummary(context.Background())

	require.Len(t, summary.Holdings, len(seedHoldings))

	var wantValue, wantCost float64
	for i, holding := range seedHoldings {
		valuation := summary.Holdings[i]
		assert.Equal(t, holding.Symbol, valuation.Symbol)
		assert.Equal(t, prices[holding.Symbol], valuation.CurrentPrice)
		assert.InDelta(t, holding.Shares*prices[holding.Symbol], valuation.CurrentValue, 0.01)

		wantValue += holding.Shares * prices[holding.Symbol]
		wantCost += holding.Shares * holding.CostBasis
	}

	assert.InDelta(t, wantValue, summary.TotalValue, 0.01)
	assert.InDelta(t, wantCost, summary.TotalCost, 0.01)
	assert.InDelta(t, (wantValue-wantCost)/wantCost*100, summary.TotalGainPercent, 0.01)
}

func TestPortfolioSummary_GainPercentPerHolding(t *testing.T) {
	quotes := &fakeQuoteService{
		getQuote: func(_ context.Context, symbol string) *entity.StockSnapshot {
			// Every holding doubles against its cost basis.
			for _, holding := range seedHoldings {
				if holding.Symbol == symbol {
					return syntheticSnapshot(symbol, holding.CostBasis*2, 0)
				}
			}
			return syntheticSnapshot(symbol, 1, 0)
		},
	}
	svc := NewPortfolioService(quotes, logger.NewNop())

	summary := svc.GetSummary(context.Background())

	for _, valuation := range summary.Holdings {
		assert.InDelta(t, 100.0, valuation.GainPercent, 0.01, valuation.Symbol)
	}
	assert.InDelta(t, 100.0, summary.TotalGainPercent, 0.01)
}
