package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"wealthview/internal/dto"
	"wealthview/internal/repository"
	"wealthview/internal/service"
	"wealthview/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T) *ProfileHandler {
	t.Helper()
	repo := repository.NewFileProfileRepository(filepath.Join(t.TempDir(), "profile.json"))
	return NewProfileHandler(service.NewProfileService(repo, logger.NewNop()), logger.NewNop())
}

func TestGetProfile_ReturnsDefaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newProfileHandler(t)
	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "John", response.Profile.FirstName)
	assert.Equal(t, 5, response.Profile.RiskTolerance)
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	e := echo.New()
	h := newProfileHandler(t)

	body := strings.NewReader(`{"riskTolerance": 8}`)
	req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/profile", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var response dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 8, response.Profile.RiskTolerance)
	assert.Equal(t, "John", response.Profile.FirstName)
}

func TestUpdateProfile_RiskToleranceValidated(t *testing.T) {
	e := echo.New()
	h := newProfileHandler(t)

	for _, payload := range []string{`{"riskTolerance": 0}`, `{"riskTolerance": 11}`} {
		req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/profile", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code, payload)
	}
}

func TestUpdateProfile_InvalidPayload(t *testing.T) {
	e := echo.New()
	h := newProfileHandler(t)

	req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/profile", strings.NewReader(`{"riskTolerance": "high"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
