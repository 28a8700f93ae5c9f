package service

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"wealthview/internal/entity"
)

const (
	// dailyVolatility scales the random walk term (1.5% of base price).
	dailyVolatility = 0.015
	// predictionErrorScale scales the extra forecast noise (0.5% of base).
	predictionErrorScale = 0.005

	buyThreshold  = 0.03
	sellThreshold = -0.02
)

// Synthesizer produces randomized but realistically shaped prediction
// snapshots: a 10-point series (5 past days, today, 4 future days) built
// from a random walk plus one trend drift shared across the window.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSynthesizer creates a synthesizer seeded from the wall clock.
func NewSynthesizer() *Synthesizer {
	return NewSynthesizerWithSource(rand.NewSource(time.Now().UnixNano()), time.Now)
}

// NewSynthesizerWithSource creates a synthesizer with an explicit random
// source and clock, so tests can fix both.
func NewSynthesizerWithSource(src rand.Source, now func() time.Time) *Synthesizer {
	return &Synthesizer{
		rng: rand.New(src),
		now: now,
	}
}

// Synthesize builds a snapshot for the symbol. The result is always
// complete and renderable; it is the guaranteed fallback when live data
// is unavailable.
func (s *Synthesizer) Synthesize(symbol string) *entity.StockSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, basePrice := s.stockInfo(symbol)

	// One drift for the whole window gives the series a consistent trend
	// instead of pure noise: -0.3% to +0.5% per day.
	trendStrength := s.rng.Float64()*0.008 - 0.003

	today := s.now()
	points := make([]entity.PredictionPoint, 0, entity.PredictionDays)

	for i := -5; i < 5; i++ {
		dayIndex := float64(i + 5)
		randomWalk := (s.rng.Float64()*2 - 1) * dailyVolatility * basePrice
		trendComponent := trendStrength * dayIndex * basePrice
		price := basePrice*(1+0.01*dayIndex) + randomWalk + trendComponent

		// Forecast error applies from today onward.
		predictionError := 0.0
		if i >= 0 {
			predictionError = (s.rng.Float64()*2 - 1) * predictionErrorScale * basePrice
		}

		// Future days have no realized price; 0 is the sentinel.
		actual := price
		if i > 0 {
			actual = 0
		}

		points = append(points, entity.PredictionPoint{
			Date:      today.AddDate(0, 0, i).Format("Jan 2"),
			Actual:    actual,
			Predicted: price + predictionError,
		})
	}

	confidenceScore := 65 + s.rng.Intn(25)

	currentPrice := points[entity.TodayIndex].Predicted
	lastPredicted := points[entity.PredictionDays-1].Predicted
	priceChange := (lastPredicted - currentPrice) / currentPrice

	recommendation := entity.RecommendationHold
	switch {
	case priceChange > buyThreshold:
		recommendation = entity.RecommendationBuy
	case priceChange < sellThreshold:
		recommendation = entity.RecommendationSell
	}

	previousClose := points[entity.TodayIndex-1].Actual
	dailyChange := (currentPrice - previousClose) / previousClose

	return &entity.StockSnapshot{
		Symbol:          strings.ToUpper(symbol),
		Name:            name,
		CurrentPrice:    currentPrice,
		Change:          math.Round(dailyChange*10000) / 100,
		PredictionData:  points,
		ConfidenceScore: confidenceScore,
		Recommendation:  recommendation,
		DataSource:      entity.DataSourceSynthetic,
	}
}

// stockInfo resolves a display name and base price: the static table for
// known tickers, a suffix heuristic plus random price for the rest.
func (s *Synthesizer) stockInfo(symbol string) (string, float64) {
	upper := strings.ToUpper(symbol)
	if stock, ok := lookupKnownStock(upper); ok {
		return stock.Name, stock.BasePrice
	}

	name := upper
	if len(upper) > 1 {
		name = upper + " Corporation"
		switch {
		case strings.HasSuffix(upper, "X"):
			name = upper[:len(upper)-1] + "nex Inc."
		case strings.HasSuffix(upper, "Q"):
			name = upper[:len(upper)-1] + "quest Technologies"
		case strings.HasSuffix(upper, "Z"):
			name = upper[:len(upper)-1] + "zeta Systems"
		}
	}

	// Most stocks trade between $10 and $500.
	price := 10 + s.rng.Float64()*490

	return name, price
}
