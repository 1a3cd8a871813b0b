package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Tickets, 3)
	assert.Len(t, seed.Requests, 7)
	assert.Len(t, seed.Rooms, 8)
	assert.Len(t, seed.Lecturers, 2)
	assert.Len(t, seed.Users, 4)
	assert.Len(t, seed.Reports, 4)
	assert.Len(t, seed.Dashboard.WeeklyBookings, 7)

	assert.True(t, seed.Tickets[0].Unread)
	assert.Equal(t, models.TicketStatusInProgress, seed.Tickets[1].Status)
	require.NotNil(t, seed.Tickets[2].Messages[2].AttachmentURL)
	assert.Equal(t, 2025, seed.Tickets[0].CreatedAt.Year())

	assert.Equal(t, models.RequestStatusApproved, seed.Requests[1].Status)
	require.NotNil(t, seed.Requests[1].Time)
	assert.Equal(t, "14:00-16:00", *seed.Requests[1].Time)
	assert.Nil(t, seed.Requests[0].Time)

	assert.False(t, seed.Rooms[3].IsAvailable)
	assert.Equal(t, models.PasswordPolicyStrong, seed.Settings.Security.PasswordPolicy)
	assert.Equal(t, 5, seed.Settings.Security.MaxLoginAttempts)
}

func TestParseSeedRejectsMalformedDocument(t *testing.T) {
	_, err := ParseSeed([]byte("tickets: ["))
	assert.Error(t, err)
}
