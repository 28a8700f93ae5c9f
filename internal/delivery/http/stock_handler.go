package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wealthview/internal/dto"
	"wealthview/internal/service"
	"wealthview/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for stock search, snapshots, and
// snapshot streams.
type StockHandler struct {
	searchService service.SearchService
	quoteService  service.QuoteService
	watcher       *service.Watcher
	logger        *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(searchService service.SearchService, quoteService service.QuoteService, watcher *service.Watcher, logger *logger.Logger) *StockHandler {
	return &StockHandler{
		searchService: searchService,
		quoteService:  quoteService,
		watcher:       watcher,
		logger:        logger,
	}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/:symbol", h.GetSnapshot)
	g.GET("/:symbol/stream", h.Stream)
}

// Search handles symbol search queries. An empty query is rejected before
// the service is called.
func (h *StockHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing search query"})
	}

	matches, err := h.searchService.Search(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Symbol search failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to search stocks"})
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{Query: query, Matches: matches})
}

// GetSnapshot returns the quote and prediction snapshot for one symbol.
// The quote service always has a renderable result.
func (h *StockHandler) GetSnapshot(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing symbol"})
	}

	snapshot := h.quoteService.GetQuote(c.Request().Context(), symbol)
	return c.JSON(http.StatusOK, snapshot)
}

// Stream serves a server-sent-event stream of snapshots, refreshed on the
// watcher interval until the client disconnects.
func (h *StockHandler) Stream(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing symbol"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	for snapshot := range h.watcher.Watch(ctx, symbol) {
		data, err := json.Marshal(snapshot)
		if err != nil {
			h.logger.Error("Failed to encode snapshot event", logger.ErrorField(err))
			continue
		}
		fmt.Fprintf(c.Response(), "data: %s\n\n", data)
		c.Response().Flush()
	}

	return nil
}
