package http

import (
	"net/http"

	"wealthview/internal/dto"
	"wealthview/internal/service"
	"wealthview/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the dashboard pages:
// portfolio, insights, and the market overview.
type DashboardHandler struct {
	portfolioService service.PortfolioService
	insightsService  service.InsightsService
	marketService    service.MarketService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(portfolioService service.PortfolioService, insightsService service.InsightsService, marketService service.MarketService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		portfolioService: portfolioService,
		insightsService:  insightsService,
		marketService:    marketService,
		logger:           logger,
	}
}

// RegisterRoutes registers the dashboard routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/portfolio", h.GetPortfolio)
	g.GET("/insights", h.GetInsights)
	g.GET("/market/overview", h.GetMarketOverview)
}

// GetPortfolio returns the valued holdings table.
func (h *DashboardHandler) GetPortfolio(c echo.Context) error {
	summary := h.portfolioService.GetSummary(c.Request().Context())
	return c.JSON(http.StatusOK, summary)
}

// GetInsights returns the personalized insights.
func (h *DashboardHandler) GetInsights(c echo.Context) error {
	insights, err := h.insightsService.GetInsights(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to build insights", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build insights"})
	}
	return c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

// GetMarketOverview returns the index cards and latest movers.
func (h *DashboardHandler) GetMarketOverview(c echo.Context) error {
	overview := h.marketService.Overview(c.Request().Context())
	return c.JSON(http.StatusOK, overview)
}
