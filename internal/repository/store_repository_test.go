package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

func mustSeed(t *testing.T) *Seed {
	t.Helper()
	seed, err := LoadSeed()
	require.NoError(t, err)
	return seed
}

func TestRequestRepositoryFilters(t *testing.T) {
	repo := NewRequestRepository(mustSeed(t).Requests)

	assert.Len(t, repo.List(models.RequestFilter{}), 7)
	assert.Len(t, repo.List(models.RequestFilter{Status: models.FilterAll, Type: models.FilterAll}), 7)

	booking := repo.List(models.RequestFilter{Type: string(models.RequestTypeBooking)})
	assert.Len(t, booking, 4)

	approvedBooking := repo.List(models.RequestFilter{Status: "Approved", Type: "Booking"})
	require.Len(t, approvedBooking, 2)
	assert.Equal(t, "REQ-002", approvedBooking[0].ID)

	b202 := repo.List(models.RequestFilter{Search: "b202"})
	assert.Len(t, b202, 2)

	byUser := repo.List(models.RequestFilter{Search: "std13579"})
	require.Len(t, byUser, 1)
	assert.Equal(t, "REQ-005", byUser[0].ID)

	assert.Empty(t, repo.List(models.RequestFilter{Status: "Open", Search: "library"}))
}

func TestRoomRepositorySetAvailabilityMany(t *testing.T) {
	repo := NewRoomRepository(mustSeed(t).Rooms)

	updated := repo.SetAvailabilityMany([]string{"A101", "B202", "ZZZ"}, false)
	assert.Len(t, updated, 2)

	a101, err := repo.FindByID("A101")
	require.NoError(t, err)
	assert.False(t, a101.IsAvailable)

	_, err = repo.SetAvailability("ZZZ", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryCreateSkipsUsedIDs(t *testing.T) {
	repo := NewUserRepository(mustSeed(t).Users)

	created := repo.Create(models.User{Name: "New"})
	assert.Equal(t, "USR005", created.ID)

	require.NoError(t, repo.Delete("USR002"))
	next := repo.Create(models.User{Name: "Next"})
	assert.Equal(t, "USR006", next.ID)
	assert.Len(t, repo.List(), 5)

	assert.ErrorIs(t, repo.Delete("USR999"), ErrNotFound)
}

func TestReportRepositoryJobLifecycle(t *testing.T) {
	repo := NewReportRepository(mustSeed(t).Reports)
	repo.CreateJob(models.ReportJob{ID: "job-1", ReportID: "user-report", Status: models.ReportStatusQueued})

	require.NoError(t, repo.UpdateJobStatus("job-1", models.ReportStatusProcessing, 50))
	finished := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkFinished("job-1", "/export/token", finished))

	job, err := repo.FindJob("job-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusFinished, job.Status)
	assert.Equal(t, 100, job.Progress)

	def, err := repo.Definition("user-report")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", def.LastGenerated)

	_, err = repo.FindJob("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
