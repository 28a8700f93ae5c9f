package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"wealthview/internal/dto"
	"wealthview/internal/entity"
	"wealthview/internal/service"
	"wealthview/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchService struct {
	matches []entity.SymbolMatch
}

func (s *stubSearchService) Search(context.Context, string) ([]entity.SymbolMatch, error) {
	return s.matches, nil
}

type stubQuoteService struct {
	snapshot *entity.StockSnapshot
}

func (s *stubQuoteService) GetQuote(context.Context, string) *entity.StockSnapshot {
	return s.snapshot
}

func testSnapshot(symbol string) *entity.StockSnapshot {
	points := make([]entity.PredictionPoint, entity.PredictionDays)
	for i := range points {
		points[i] = entity.PredictionPoint{Date: "Apr 10", Actual: 100, Predicted: 100}
	}
	return &entity.StockSnapshot{
		Symbol:          symbol,
		Name:            symbol + " Corporation",
		CurrentPrice:    100,
		PredictionData:  points,
		ConfidenceScore: 70,
		Recommendation:  entity.RecommendationHold,
		DataSource:      entity.DataSourceSynthetic,
	}
}

func newStockHandler(search service.SearchService, quotes service.QuoteService) *StockHandler {
	return NewStockHandler(search, quotes, service.NewWatcher(quotes, 0, logger.NewNop()), logger.NewNop())
}

func TestSearchHandler_EmptyQueryRejected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/stocks/search?q=++", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newStockHandler(&stubSearchService{}, &stubQuoteService{snapshot: testSnapshot("AAPL")})
	require.NoError(t, h.Search(c))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestSearchHandler_ReturnsMatches(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/stocks/search?q=apple", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newStockHandler(&stubSearchService{
		matches: []entity.SymbolMatch{{Symbol: "AAPL", Name: "Apple Inc."}},
	}, &stubQuoteService{snapshot: testSnapshot("AAPL")})
	require.NoError(t, h.Search(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "apple", response.Query)
	require.Len(t, response.Matches, 1)
	assert.Equal(t, "AAPL", response.Matches[0].Symbol)
}

func TestSnapshotHandler_UppercasesSymbol(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("symbol")
	c.SetParamValues("msft")

	h := newStockHandler(&stubSearchService{}, &stubQuoteService{snapshot: testSnapshot("MSFT")})
	require.NoError(t, h.GetSnapshot(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var snapshot entity.StockSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, "MSFT", snapshot.Symbol)
	assert.Len(t, snapshot.PredictionData, entity.PredictionDays)
}
