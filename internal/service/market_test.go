package service

import (
	"context"
	"testing"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketOverview_SplitsAndSortsMovers(t *testing.T) {
	changes := map[string]float64{
		"AAPL": 2.45, "MSFT": 1.98, "AMZN": 1.75, "TSLA": 3.21,
		"META": -1.32, "NFLX": -0.87, "GOOGL": -0.58, "NVDA": -1.76,
	}
	quotes := &fakeQuoteService{
		getQuote: func(_ context.Context, symbol string) *entity.StockSnapshot {
			return syntheticSnapshot(symbol, 100, changes[symbol])
		},
	}
	svc := NewMarketService(quotes, logger.NewNop())
	ctx := context.Background()

	svc.Refresh(ctx)
	overview := svc.Overview(ctx)

	require.Len(t, overview.Indices, 3)
	assert.Equal(t, "S&P 500", overview.Indices[0].Name)

	gainers := make([]string, 0, len(overview.Gainers))
	for _, snapshot := range overview.Gainers {
		gainers = append(gainers, snapshot.Symbol)
	}
	losers := make([]string, 0, len(overview.Losers))
	for _, snapshot := range overview.Losers {
		losers = append(losers, snapshot.Symbol)
	}

	assert.Equal(t, []string{"TSLA", "AAPL", "MSFT", "AMZN"}, gainers)
	assert.Equal(t, []string{"NVDA", "META", "NFLX", "GOOGL"}, losers)
}

func TestMarketOverview_RefreshesLazilyBeforeFirstSchedule(t *testing.T) {
	calls := 0
	quotes := &fakeQuoteService{
		getQuote: func(_ context.Context, symbol string) *entity.StockSnapshot {
			calls++
			return syntheticSnapshot(symbol, 50, 1)
		},
	}
	svc := NewMarketService(quotes, logger.NewNop())

	overview := svc.Overview(context.Background())

	assert.Equal(t, len(trackedSymbols), calls)
	assert.Len(t, overview.Gainers, len(trackedSymbols))
	assert.Empty(t, overview.Losers)
}
