package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
)

const (
	dashboardSummaryKey     = "dashboard:summary"
	dashboardMaintenanceKey = "dashboard:maintenance"
	dashboardCachePattern   = "dashboard:*"
	activeTicketsTitle      = "Active Maintenance Tickets"
)

type ticketLister interface {
	List() []models.Ticket
}

// DashboardContent is the static part of the dashboard.
type DashboardContent struct {
	Stats          []models.StatCard
	WeeklyBookings []models.BookingPoint
	Profile        models.AdminProfile
}

// DashboardService composes the dashboard and maintenance statistics views.
type DashboardService struct {
	tickets  ticketLister
	content  DashboardContent
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(tickets ticketLister, content DashboardContent, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{tickets: tickets, content: content, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Summary returns the dashboard and whether it came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, bool, error) {
	var cached models.DashboardSummary
	if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	summary := &models.DashboardSummary{
		Stats:          s.composeStats(),
		WeeklyBookings: append([]models.BookingPoint{}, s.content.WeeklyBookings...),
		Profile:        s.content.Profile,
	}
	s.persistCache(ctx, dashboardSummaryKey, summary)
	return summary, false, nil
}

// MaintenanceStats groups tickets by status and priority.
func (s *DashboardService) MaintenanceStats(ctx context.Context) (*models.MaintenanceStats, bool, error) {
	var cached models.MaintenanceStats
	if hit, err := s.cache.Get(ctx, dashboardMaintenanceKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	tickets := s.tickets.List()
	byStatus := make(map[models.TicketStatus]int)
	byPriority := make(map[models.Priority]int)
	for _, t := range tickets {
		byStatus[t.Status]++
		byPriority[t.Priority]++
	}
	stats := &models.MaintenanceStats{Total: len(tickets)}
	for _, status := range models.TicketStatuses {
		stats.ByStatus = append(stats.ByStatus, models.StatusSlice{Name: string(status), Value: byStatus[status]})
	}
	for _, priority := range models.Priorities {
		stats.ByPriority = append(stats.ByPriority, models.StatusSlice{Name: string(priority), Value: byPriority[priority]})
	}
	s.persistCache(ctx, dashboardMaintenanceKey, stats)
	return stats, false, nil
}

// Invalidate drops cached dashboard views.
func (s *DashboardService) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx, dashboardCachePattern)
}

// Subscribe invalidates the cache whenever tickets, requests or rooms change.
func (s *DashboardService) Subscribe(dispatcher events.Dispatcher) {
	handler := func(ctx context.Context, e events.Event) error {
		s.logger.Debug("dashboard invalidated", zap.String("event", string(e.Type)), zap.String("aggregate_id", e.AggregateID))
		return s.Invalidate(ctx)
	}
	for _, t := range []events.EventType{events.TicketMessageAdded, events.TicketStatusChanged, events.RequestCancelled, events.RoomsAvailability} {
		dispatcher.Subscribe(t, handler)
	}
}

func (s *DashboardService) composeStats() []models.StatCard {
	active := 0
	for _, t := range s.tickets.List() {
		if t.Status != models.TicketStatusResolved {
			active++
		}
	}
	stats := append([]models.StatCard{}, s.content.Stats...)
	for i := range stats {
		if stats[i].Title == activeTicketsTitle {
			stats[i].Value = strconv.Itoa(active)
		}
	}
	return stats
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
