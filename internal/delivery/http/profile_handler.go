package http

import (
	"net/http"

	"wealthview/internal/dto"
	"wealthview/internal/entity"
	"wealthview/internal/service"
	"wealthview/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *logger.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// RegisterRoutes registers the profile routes to the Echo group.
func (h *ProfileHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetProfile)
	g.PUT("", h.UpdateProfile)
}

// GetProfile returns the stored profile, seeding defaults on first use.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileService.Load(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to load profile", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load profile"})
	}
	return c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// UpdateProfile shallow-merges a partial profile into the stored one.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var update entity.UserProfileUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if update.RiskTolerance != nil && (*update.RiskTolerance < 1 || *update.RiskTolerance > 10) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Risk tolerance must be between 1 and 10"})
	}

	profile, err := h.profileService.Update(c.Request().Context(), update)
	if err != nil {
		h.logger.Error("Failed to update profile", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update profile"})
	}
	return c.JSON(http.StatusOK, dto.ProfileResponse{Profile: profile})
}
