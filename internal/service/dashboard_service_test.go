package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

type fakeCacheRepo struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.items {
		if strings.HasPrefix(key, prefix) {
			delete(f.items, key)
		}
	}
	return nil
}

func newDashboardFixture(t *testing.T, cacheEnabled bool) (*DashboardService, *TicketService) {
	seed := loadSeed(t)
	dispatcher := events.NewInMemoryDispatcher()
	tickets := repository.NewTicketRepository(seed.Tickets)
	cache := NewCacheService(newFakeCacheRepo(), NewMetricsService(), time.Minute, nil, cacheEnabled)
	dashboard := NewDashboardService(tickets, DashboardContent{
		Stats:          seed.Dashboard.Stats,
		WeeklyBookings: seed.Dashboard.WeeklyBookings,
		Profile:        seed.Dashboard.Profile,
	}, cache, time.Minute, nil)
	dashboard.Subscribe(dispatcher)
	return dashboard, NewTicketService(tickets, dispatcher, nil, nil)
}

func statValue(summary *models.DashboardSummary, title string) string {
	for _, s := range summary.Stats {
		if s.Title == title {
			return s.Value
		}
	}
	return ""
}

func TestDashboardSummaryUsesCache(t *testing.T) {
	dashboard, _ := newDashboardFixture(t, true)
	ctx := context.Background()

	summary, hit, err := dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "1,284", statValue(summary, "Total Bookings"))
	assert.Equal(t, "2", statValue(summary, "Active Maintenance Tickets"))
	require.Len(t, summary.WeeklyBookings, 7)
	assert.Equal(t, 32, summary.WeeklyBookings[4].Bookings)
	assert.Equal(t, "Facility Management", summary.Profile.Department)

	_, hit, err = dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestDashboardInvalidatedByTicketEvents(t *testing.T) {
	dashboard, tickets := newDashboardFixture(t, true)
	ctx := context.Background()

	_, _, err := dashboard.Summary(ctx)
	require.NoError(t, err)
	_, err = tickets.SetStatus(ctx, 1, models.TicketStatusResolved)
	require.NoError(t, err)

	summary, hit, err := dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "1", statValue(summary, "Active Maintenance Tickets"))
}

func TestMaintenanceStatsGroups(t *testing.T) {
	dashboard, _ := newDashboardFixture(t, false)
	stats, hit, err := dashboard.MaintenanceStats(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, []models.StatusSlice{{Name: "Open", Value: 1}, {Name: "In Progress", Value: 1}, {Name: "Resolved", Value: 1}}, stats.ByStatus)
	assert.Equal(t, []models.StatusSlice{{Name: "Low", Value: 1}, {Name: "Medium", Value: 1}, {Name: "High", Value: 1}}, stats.ByPriority)
}
