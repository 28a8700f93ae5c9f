package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wealthview/internal/config"
	"wealthview/internal/dto"
	"wealthview/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	functionSymbolSearch = "SYMBOL_SEARCH"
	functionGlobalQuote  = "GLOBAL_QUOTE"
)

// AlphaVantageRepository talks to the Alpha Vantage query endpoint.
type AlphaVantageRepository interface {
	SymbolSearch(ctx context.Context, keywords string) (*dto.SymbolSearchResponse, error)
	GlobalQuote(ctx context.Context, symbol string) (*dto.GlobalQuoteResponse, error)
}

type alphaVantageRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewAlphaVantageRepository creates a repository with a per-minute request
// limiter sized from configuration.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) AlphaVantageRepository {
	timeout, err := time.ParseDuration(cfg.AlphaVantage.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxPerMinute := cfg.AlphaVantage.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 5
	}
	secondsPerRequest := time.Minute / time.Duration(maxPerMinute)
	return &alphaVantageRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// SymbolSearch performs a SYMBOL_SEARCH lookup for the given keywords.
func (r *alphaVantageRepository) SymbolSearch(ctx context.Context, keywords string) (*dto.SymbolSearchResponse, error) {
	params := url.Values{}
	params.Set("function", functionSymbolSearch)
	params.Set("keywords", keywords)

	body, err := r.sendRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var response dto.SymbolSearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode symbol search response: %w", err)
	}

	r.log.DebugContext(ctx, "Alpha Vantage symbol search completed",
		logger.StringField("keywords", keywords),
		logger.IntField("matches", len(response.BestMatches)))

	return &response, nil
}

// GlobalQuote fetches the current quote for a symbol.
func (r *alphaVantageRepository) GlobalQuote(ctx context.Context, symbol string) (*dto.GlobalQuoteResponse, error) {
	params := url.Values{}
	params.Set("function", functionGlobalQuote)
	params.Set("symbol", symbol)

	body, err := r.sendRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var response dto.GlobalQuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode global quote response: %w", err)
	}

	return &response, nil
}

func (r *alphaVantageRepository) sendRequest(ctx context.Context, params url.Values) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for request limit", logger.ErrorField(err))
		return nil, err
	}

	params.Set("apikey", r.cfg.AlphaVantage.APIKey)
	reqURL := fmt.Sprintf("%s?%s", r.cfg.AlphaVantage.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Alpha Vantage: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
