package service

import (
	"context"
	"strconv"
	"strings"

	"wealthview/internal/entity"
	"wealthview/internal/notifier"
	"wealthview/internal/repository"
	"wealthview/pkg/logger"
)

// QuoteService assembles prediction snapshots, anchored to the live quote
// when the provider answers and to synthetic data otherwise.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) *entity.StockSnapshot
}

// NewQuoteService creates the snapshot orchestrator.
func NewQuoteService(synthesizer *Synthesizer, avRepo repository.AlphaVantageRepository, advisories notifier.Notifier, log *logger.Logger) QuoteService {
	return &quoteService{
		synthesizer: synthesizer,
		avRepo:      avRepo,
		advisories:  advisories,
		log:         log,
	}
}

type quoteService struct {
	synthesizer *Synthesizer
	avRepo      repository.AlphaVantageRepository
	advisories  notifier.Notifier
	log         *logger.Logger
}

// GetQuote never fails: every degraded path returns the synthetic snapshot
// and surfaces an advisory naming the reason.
func (s *quoteService) GetQuote(ctx context.Context, symbol string) *entity.StockSnapshot {
	// The synthetic snapshot is both the fallback and the shape template
	// for the live result.
	snapshot := s.synthesizer.Synthesize(symbol)

	response, err := s.avRepo.GlobalQuote(ctx, symbol)
	if err != nil {
		s.log.ErrorContext(ctx, "Global quote fetch failed", logger.ErrorField(err), logger.StringField("symbol", symbol))
		s.advisories.Notify(ctx, notifier.Advisory{
			Reason:  notifier.ReasonProviderError,
			Symbol:  snapshot.Symbol,
			Message: "Unable to fetch real-time data. Using simulated predictions.",
		})
		return snapshot
	}

	if response.Note != "" || response.GlobalQuote == nil {
		s.advisories.Notify(ctx, notifier.Advisory{
			Reason:  notifier.ReasonRateLimited,
			Symbol:  snapshot.Symbol,
			Message: "API limit reached. Using cached data.",
		})
		return snapshot
	}

	quote := response.GlobalQuote
	price, err := strconv.ParseFloat(quote.Price, 64)
	if err != nil {
		s.fallbackOnMalformed(ctx, snapshot, "price", quote.Price, err)
		return snapshot
	}

	changePercent, err := strconv.ParseFloat(strings.TrimSuffix(quote.ChangePercent, "%"), 64)
	if err != nil {
		s.fallbackOnMalformed(ctx, snapshot, "change percent", quote.ChangePercent, err)
		return snapshot
	}

	// Rescale the past days so they lead into the real price. Today and
	// the future days keep their synthetic values; the possible step at
	// the today boundary is a known approximation.
	adjustFactor := price / snapshot.CurrentPrice
	for i := 0; i < entity.TodayIndex; i++ {
		snapshot.PredictionData[i].Actual *= adjustFactor
		snapshot.PredictionData[i].Predicted *= adjustFactor
	}

	snapshot.CurrentPrice = price
	snapshot.Change = changePercent
	snapshot.DataSource = entity.DataSourceLive

	return snapshot
}

func (s *quoteService) fallbackOnMalformed(ctx context.Context, snapshot *entity.StockSnapshot, field, value string, err error) {
	s.log.ErrorContext(ctx, "Malformed quote payload",
		logger.ErrorField(err),
		logger.StringField("field", field),
		logger.StringField("value", value),
		logger.StringField("symbol", snapshot.Symbol))
	s.advisories.Notify(ctx, notifier.Advisory{
		Reason:  notifier.ReasonProviderError,
		Symbol:  snapshot.Symbol,
		Message: "Unable to fetch real-time data. Using simulated predictions.",
	})
}
