package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-desk-api/internal/middleware"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
	"github.com/noah-isme/campus-desk-api/pkg/response"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Tickets   *TicketHandler
	Requests  *RequestHandler
	Rooms     *RoomHandler
	Lecturers *LecturerHandler
	Users     *UserHandler
	Settings  *SettingsHandler
	Reports   *ReportHandler
	Metrics   *MetricsHandler
}

// Register mounts operational endpoints at the root and the API under prefix.
func Register(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	api.GET("/metrics/summary", h.Metrics.Snapshot)
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/dashboard", h.Dashboard.Summary)
	api.GET("/dashboard/recent-requests", h.Dashboard.RecentRequests)
	api.GET("/maintenance/stats", h.Dashboard.MaintenanceStats)

	tickets := api.Group("/tickets")
	tickets.GET("", h.Tickets.List)
	tickets.GET("/counts", h.Tickets.Counts)
	tickets.GET("/active", h.Tickets.Active)
	tickets.GET("/:id", h.Tickets.Get)
	tickets.POST("/:id/select", h.Tickets.Select)
	tickets.POST("/:id/messages", h.Tickets.AppendMessage)
	tickets.PATCH("/:id/status", h.Tickets.SetStatus)

	requests := api.Group("/requests")
	requests.GET("", h.Requests.List)
	requests.GET("/:id", h.Requests.Get)
	requests.POST("/:id/cancel", h.Requests.Cancel)

	rooms := api.Group("/rooms")
	rooms.GET("", h.Rooms.List)
	rooms.GET("/buildings", h.Rooms.Buildings)
	rooms.PATCH("/availability", h.Rooms.ToggleMany)
	rooms.GET("/selection", h.Rooms.Selection)
	rooms.POST("/selection", h.Rooms.SelectAll)
	rooms.DELETE("/selection", h.Rooms.DeselectAll)
	rooms.POST("/selection/apply", h.Rooms.BulkApply)
	rooms.PATCH("/:id/availability", h.Rooms.Toggle)
	rooms.POST("/:id/select", h.Rooms.Select)

	api.GET("/settings", h.Settings.Get)
	api.PUT("/settings", h.Settings.Update)

	api.GET("/lecturers", h.Lecturers.List)
	api.POST("/lecturers", h.Lecturers.Create)

	api.GET("/users", h.Users.List)
	api.POST("/users", h.Users.Create)
	api.DELETE("/users/:id", h.Users.Delete)

	if h.Reports != nil {
		api.GET("/reports", h.Reports.Catalog)
		api.POST("/reports/generate", h.Reports.Generate)
		api.GET("/reports/jobs/:id", h.Reports.Status)
		api.GET("/export/:token", h.Reports.Download)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})
}
