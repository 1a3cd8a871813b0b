package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-desk-api/internal/middleware"
	"github.com/noah-isme/campus-desk-api/internal/models"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
	"github.com/noah-isme/campus-desk-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, bool, error)
	MaintenanceStats(ctx context.Context) (*models.MaintenanceStats, bool, error)
}

type recentRequestLister interface {
	Recent(ctx context.Context, limit int) []models.Request
}

// DashboardHandler wires dashboard views to HTTP endpoints.
type DashboardHandler struct {
	service  dashboardService
	requests recentRequestLister
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, requests recentRequestLister) *DashboardHandler {
	return &DashboardHandler{service: service, requests: requests}
}

// Summary godoc
// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, cacheHit, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, nil, middleware.ExtractMeta(c))
}

// RecentRequests godoc
// @Summary Recent requests card
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of requests (default 4)"
// @Success 200 {object} response.Envelope
// @Router /dashboard/recent-requests [get]
func (h *DashboardHandler) RecentRequests(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, appErrors.Validation("invalid limit", "limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	response.JSON(c, http.StatusOK, h.requests.Recent(c.Request.Context(), limit), nil)
}

// MaintenanceStats godoc
// @Summary Maintenance ticket statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /maintenance/stats [get]
func (h *DashboardHandler) MaintenanceStats(c *gin.Context) {
	stats, cacheHit, err := h.service.MaintenanceStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, nil, middleware.ExtractMeta(c))
}
