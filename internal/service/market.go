package service

import (
	"context"
	"sort"
	"sync"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"

	"github.com/robfig/cron/v3"
)

// trackedSymbols are the tickers shown on the dashboard overview.
var trackedSymbols = []string{"AAPL", "MSFT", "AMZN", "TSLA", "META", "NFLX", "GOOGL", "NVDA"}

// marketIndices are the overview index cards. Index data is not part of
// the quote provider plan, so the cards are static.
var marketIndices = []entity.MarketIndex{
	{Name: "S&P 500", Value: 4420, Change: 1.2},
	{Name: "NASDAQ", Value: 15000, Change: -0.5},
	{Name: "DOW 30", Value: 35400, Change: 0.8},
}

// MarketService keeps a periodically refreshed overview of the tracked
// tickers and serves the latest one.
type MarketService interface {
	Overview(ctx context.Context) entity.MarketOverview
	Refresh(ctx context.Context)
	Start(ctx context.Context, schedule string) error
	Stop()
}

// NewMarketService creates a market overview service.
func NewMarketService(quotes QuoteService, log *logger.Logger) MarketService {
	return &marketService{
		quotes: quotes,
		log:    log,
		cron:   cron.New(),
	}
}

type marketService struct {
	quotes QuoteService
	log    *logger.Logger
	cron   *cron.Cron

	mu     sync.RWMutex
	latest []entity.StockSnapshot
}

// Start runs an initial refresh and schedules periodic ones.
func (s *marketService) Start(ctx context.Context, schedule string) error {
	s.Refresh(ctx)

	_, err := s.cron.AddFunc(schedule, func() {
		s.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Market overview refresh scheduled", logger.StringField("schedule", schedule))
	return nil
}

// Stop halts the refresh schedule.
func (s *marketService) Stop() {
	s.cron.Stop()
}

// Refresh fetches fresh snapshots for every tracked symbol.
func (s *marketService) Refresh(ctx context.Context) {
	snapshots := make([]entity.StockSnapshot, 0, len(trackedSymbols))
	for _, symbol := range trackedSymbols {
		if ctx.Err() != nil {
			return
		}
		snapshots = append(snapshots, *s.quotes.GetQuote(ctx, symbol))
	}

	s.mu.Lock()
	s.latest = snapshots
	s.mu.Unlock()

	s.log.DebugContext(ctx, "Market overview refreshed", logger.IntField("symbols", len(snapshots)))
}

// Overview returns the static index cards plus the latest snapshots split
// into gainers and losers, best movers first.
func (s *marketService) Overview(ctx context.Context) entity.MarketOverview {
	s.mu.RLock()
	snapshots := s.latest
	s.mu.RUnlock()

	if snapshots == nil {
		// Serve an overview even before the first scheduled refresh.
		s.Refresh(ctx)
		s.mu.RLock()
		snapshots = s.latest
		s.mu.RUnlock()
	}

	overview := entity.MarketOverview{
		Indices: marketIndices,
		Gainers: make([]entity.StockSnapshot, 0, len(snapshots)),
		Losers:  make([]entity.StockSnapshot, 0, len(snapshots)),
	}
	for _, snapshot := range snapshots {
		if snapshot.Change >= 0 {
			overview.Gainers = append(overview.Gainers, snapshot)
		} else {
			overview.Losers = append(overview.Losers, snapshot)
		}
	}

	sort.Slice(overview.Gainers, func(i, j int) bool {
		return overview.Gainers[i].Change > overview.Gainers[j].Change
	})
	sort.Slice(overview.Losers, func(i, j int) bool {
		return overview.Losers[i].Change < overview.Losers[j].Change
	})

	return overview
}
