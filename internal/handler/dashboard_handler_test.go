package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/middleware"
	"github.com/noah-isme/campus-desk-api/internal/models"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

type fakeDashboardSrv struct {
	summary  *models.DashboardSummary
	stats    *models.MaintenanceStats
	hit      bool
	err      error
	requests []models.Request
	limit    int
}

func (f *fakeDashboardSrv) Summary(context.Context) (*models.DashboardSummary, bool, error) {
	return f.summary, f.hit, f.err
}

func (f *fakeDashboardSrv) MaintenanceStats(context.Context) (*models.MaintenanceStats, bool, error) {
	return f.stats, f.hit, f.err
}

func (f *fakeDashboardSrv) Recent(_ context.Context, limit int) []models.Request {
	f.limit = limit
	return f.requests
}

type responseEnvelope struct {
	Data map[string]interface{} `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

func serveDashboard(fake *fakeDashboardSrv, path string, route gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.WithResponseMeta())
	r.GET("/x", route)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDashboardHandlerSummaryReportsCacheHit(t *testing.T) {
	fake := &fakeDashboardSrv{summary: &models.DashboardSummary{Profile: models.AdminProfile{Name: "John Doe"}}, hit: true}
	handler := NewDashboardHandler(fake, fake)

	rec := serveDashboard(fake, "/x", handler.Summary)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	profile := envelope.Data["profile"].(map[string]interface{})
	assert.Equal(t, "John Doe", profile["name"])
}

func TestDashboardHandlerPropagatesErrors(t *testing.T) {
	fake := &fakeDashboardSrv{err: appErrors.ErrUnavailable}
	handler := NewDashboardHandler(fake, fake)

	rec := serveDashboard(fake, "/x", handler.MaintenanceStats)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDashboardHandlerRecentRequestsLimit(t *testing.T) {
	fake := &fakeDashboardSrv{requests: []models.Request{{ID: "REQ-001"}}}
	handler := NewDashboardHandler(fake, fake)

	rec := serveDashboard(fake, "/x?limit=2", handler.RecentRequests)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, fake.limit)

	rec = serveDashboard(fake, "/x?limit=zero", handler.RecentRequests)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
