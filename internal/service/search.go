package service

import (
	"context"
	"strings"

	"wealthview/internal/entity"
	"wealthview/internal/notifier"
	"wealthview/internal/repository"
	"wealthview/pkg/logger"
)

const maxSearchResults = 5

// SearchService finds symbol candidates for a free-text query.
type SearchService interface {
	Search(ctx context.Context, query string) ([]entity.SymbolMatch, error)
}

// NewSearchService creates a search service backed by the remote symbol
// search, with the static ticker table as fallback.
func NewSearchService(avRepo repository.AlphaVantageRepository, advisories notifier.Notifier, log *logger.Logger) SearchService {
	return &searchService{
		avRepo:     avRepo,
		advisories: advisories,
		log:        log,
	}
}

type searchService struct {
	avRepo     repository.AlphaVantageRepository
	advisories notifier.Notifier
	log        *logger.Logger
}

// Search returns at most 5 candidates. Rate-limit signals and transport
// failures both degrade to the local table; neither is an error to the
// caller. Callers must reject empty queries before calling.
func (s *searchService) Search(ctx context.Context, query string) ([]entity.SymbolMatch, error) {
	response, err := s.avRepo.SymbolSearch(ctx, query)
	if err != nil {
		s.log.ErrorContext(ctx, "Symbol search failed", logger.ErrorField(err), logger.StringField("query", query))
		s.advisories.Notify(ctx, notifier.Advisory{
			Reason:  notifier.ReasonProviderError,
			Message: "Unable to search for stocks. Using cached data.",
		})
		return s.fallbackResults(query), nil
	}

	if response.Note != "" {
		s.advisories.Notify(ctx, notifier.Advisory{
			Reason:  notifier.ReasonRateLimited,
			Message: "API limit reached. Using cached data for now.",
		})
		return s.fallbackResults(query), nil
	}

	// A response without a match list is a valid empty result.
	if response.BestMatches == nil {
		return []entity.SymbolMatch{}, nil
	}

	matches := make([]entity.SymbolMatch, 0, len(response.BestMatches))
	for _, match := range response.BestMatches {
		matches = append(matches, entity.SymbolMatch{
			Symbol: match.Symbol,
			Name:   match.Name,
		})
		if len(matches) == maxSearchResults {
			break
		}
	}
	return matches, nil
}

// fallbackResults filters the static table by case-insensitive substring
// on symbol or name.
func (s *searchService) fallbackResults(query string) []entity.SymbolMatch {
	q := strings.ToLower(query)

	matches := make([]entity.SymbolMatch, 0, maxSearchResults)
	for _, stock := range knownStocks {
		if !strings.Contains(strings.ToLower(stock.Symbol), q) &&
			!strings.Contains(strings.ToLower(stock.Name), q) {
			continue
		}
		matches = append(matches, entity.SymbolMatch{Symbol: stock.Symbol, Name: stock.Name})
		if len(matches) == maxSearchResults {
			break
		}
	}
	return matches
}
