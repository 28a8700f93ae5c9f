package dto

import "wealthview/internal/entity"

// ErrorResponse is the JSON error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SearchResponse wraps symbol search results.
type SearchResponse struct {
	Query   string               `json:"query"`
	Matches []entity.SymbolMatch `json:"matches"`
}

// ProfileResponse wraps the user profile.
type ProfileResponse struct {
	Profile entity.UserProfile `json:"profile"`
}

// InsightsResponse wraps the personalized insights list.
type InsightsResponse struct {
	Insights []entity.Insight `json:"insights"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}
