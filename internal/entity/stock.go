package entity

// Recommendation is the categorical trading suggestion attached to a
// prediction snapshot.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "buy"
	RecommendationHold Recommendation = "hold"
	RecommendationSell Recommendation = "sell"
)

// DataSource tells the caller which source served a snapshot.
type DataSource string

const (
	DataSourceLive      DataSource = "live"
	DataSourceSynthetic DataSource = "synthetic"
)

// SymbolMatch is a single symbol search candidate.
type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// PredictionPoint is one day of the prediction series. Actual is 0 for
// future days where no realized price exists.
type PredictionPoint struct {
	Date      string  `json:"date"`
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// StockSnapshot is a fully formed quote plus prediction payload for one
// symbol. The series always holds exactly 10 points: indices 0-4 are past
// days, index 5 is today, indices 6-9 are predicted future days.
type StockSnapshot struct {
	Symbol          string            `json:"symbol"`
	Name            string            `json:"name"`
	CurrentPrice    float64           `json:"currentPrice"`
	Change          float64           `json:"change"`
	PredictionData  []PredictionPoint `json:"predictionData"`
	ConfidenceScore int               `json:"confidenceScore"`
	Recommendation  Recommendation    `json:"recommendation"`
	DataSource      DataSource        `json:"dataSource"`
}

// TodayIndex is the position of today's point in the prediction series.
const TodayIndex = 5

// PredictionDays is the fixed length of the prediction series.
const PredictionDays = 10
