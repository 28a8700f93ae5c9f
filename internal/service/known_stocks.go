package service

import "strings"

// knownStock is one entry of the static ticker table used for search
// fallback and synthetic base prices.
type knownStock struct {
	Symbol    string
	Name      string
	BasePrice float64
}

var knownStocks = []knownStock{
	{Symbol: "AAPL", Name: "Apple Inc.", BasePrice: 177.58},
	{Symbol: "MSFT", Name: "Microsoft Corp.", BasePrice: 334.12},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", BasePrice: 132.97},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", BasePrice: 132.85},
	{Symbol: "TSLA", Name: "Tesla Inc.", BasePrice: 243.82},
	{Symbol: "META", Name: "Meta Platforms", BasePrice: 327.56},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", BasePrice: 876.32},
	{Symbol: "NFLX", Name: "Netflix Inc.", BasePrice: 398.75},
	{Symbol: "PYPL", Name: "PayPal Holdings", BasePrice: 61.75},
	{Symbol: "INTC", Name: "Intel Corp.", BasePrice: 38.84},
	{Symbol: "AMD", Name: "Advanced Micro Devices", BasePrice: 164.82},
	{Symbol: "DIS", Name: "Walt Disney Co.", BasePrice: 114.10},
	{Symbol: "SBUX", Name: "Starbucks Corp.", BasePrice: 92.37},
	{Symbol: "COST", Name: "Costco Wholesale", BasePrice: 725.63},
	{Symbol: "WMT", Name: "Walmart Inc.", BasePrice: 61.25},
}

func lookupKnownStock(symbol string) (knownStock, bool) {
	upper := strings.ToUpper(symbol)
	for _, stock := range knownStocks {
		if stock.Symbol == upper {
			return stock, true
		}
	}
	return knownStock{}, false
}
