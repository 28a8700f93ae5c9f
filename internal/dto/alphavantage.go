package dto

// SymbolSearchResponse is the Alpha Vantage SYMBOL_SEARCH payload. A
// non-empty Note signals that the request budget is exhausted.
type SymbolSearchResponse struct {
	BestMatches []SymbolSearchMatch `json:"bestMatches"`
	Note        string              `json:"Note"`
}

// SymbolSearchMatch is one entry of the SYMBOL_SEARCH match list.
type SymbolSearchMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	Timezone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

// GlobalQuoteResponse is the Alpha Vantage GLOBAL_QUOTE payload.
type GlobalQuoteResponse struct {
	GlobalQuote *GlobalQuote `json:"Global Quote"`
	Note        string       `json:"Note"`
}

// GlobalQuote carries the current quote fields. All values arrive as
// strings; ChangePercent has a trailing "%".
type GlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}
