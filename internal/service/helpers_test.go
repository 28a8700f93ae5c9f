package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"wealthview/internal/dto"
	"wealthview/internal/entity"
	"wealthview/internal/notifier"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// fixedNow pins the synthesizer clock so date labels are stable in tests.
func fixedNow() time.Time {
	return time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC)
}

// fakeAlphaVantageRepo lets each test script the provider behavior.
type fakeAlphaVantageRepo struct {
	symbolSearch func(ctx context.Context, keywords string) (*dto.SymbolSearchResponse, error)
	globalQuote  func(ctx context.Context, symbol string) (*dto.GlobalQuoteResponse, error)
}

func (f *fakeAlphaVantageRepo) SymbolSearch(ctx context.Context, keywords string) (*dto.SymbolSearchResponse, error) {
	return f.symbolSearch(ctx, keywords)
}

func (f *fakeAlphaVantageRepo) GlobalQuote(ctx context.Context, symbol string) (*dto.GlobalQuoteResponse, error) {
	return f.globalQuote(ctx, symbol)
}

// recordingNotifier captures advisories for assertions.
type recordingNotifier struct {
	mu         sync.Mutex
	advisories []notifier.Advisory
}

func (r *recordingNotifier) Notify(_ context.Context, advisory notifier.Advisory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advisories = append(r.advisories, advisory)
}

func (r *recordingNotifier) recorded() []notifier.Advisory {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notifier.Advisory, len(r.advisories))
	copy(out, r.advisories)
	return out
}

// fakeQuoteService scripts snapshot responses for watcher, market, and
// portfolio tests.
type fakeQuoteService struct {
	getQuote func(ctx context.Context, symbol string) *entity.StockSnapshot
}

func (f *fakeQuoteService) GetQuote(ctx context.Context, symbol string) *entity.StockSnapshot {
	return f.getQuote(ctx, symbol)
}

func syntheticSnapshot(symbol string, price, change float64) *entity.StockSnapshot {
	points := make([]entity.PredictionPoint, entity.PredictionDays)
	for i := range points {
		points[i] = entity.PredictionPoint{Date: "Apr 10", Actual: price, Predicted: price}
		if i > entity.TodayIndex {
			points[i].Actual = 0
		}
	}
	return &entity.StockSnapshot{
		Symbol:          symbol,
		Name:            symbol + " Corporation",
		CurrentPrice:    price,
		Change:          change,
		PredictionData:  points,
		ConfidenceScore: 70,
		Recommendation:  entity.RecommendationHold,
		DataSource:      entity.DataSourceSynthetic,
	}
}
