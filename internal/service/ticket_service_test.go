package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

func newTicketService(t *testing.T) (*TicketService, events.Dispatcher) {
	dispatcher := events.NewInMemoryDispatcher()
	repo := repository.NewTicketRepository(loadSeed(t).Tickets)
	return NewTicketService(repo, dispatcher, nil, zap.NewNop()), dispatcher
}

func TestTicketSelectClearsUnreadOnce(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	ticket, err := svc.Select(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ticket.Unread)

	again, err := svc.Select(ctx, 1)
	require.NoError(t, err)
	assert.False(t, again.Unread)

	active, err = svc.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 1, active.ID)

	_, err = svc.Select(ctx, 99)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestTicketFilterMatchesCounts(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()
	counts := svc.Counts(ctx)

	for _, status := range models.TicketStatuses {
		tab, tickets, err := svc.FilterByStatus(ctx, string(status))
		require.NoError(t, err)
		assert.Equal(t, status, tab)
		assert.Len(t, tickets, counts[status])
		for _, ticket := range tickets {
			assert.Equal(t, status, ticket.Status)
		}
	}

	tab, tickets, err := svc.FilterByStatus(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, tab)
	assert.Len(t, tickets, 1)

	_, _, err = svc.FilterByStatus(ctx, "Closed")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestTicketAppendMessage(t *testing.T) {
	svc, dispatcher := newTicketService(t)
	ctx := context.Background()
	var published []events.Event
	dispatcher.Subscribe(events.TicketMessageAdded, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	result, err := svc.AppendMessage(ctx, 2, "Technician is on site.")
	require.NoError(t, err)
	assert.True(t, result.Appended)
	require.Len(t, result.Ticket.Messages, 4)
	last := result.Ticket.Messages[3]
	assert.Equal(t, 4, last.ID)
	assert.Equal(t, models.SenderAdmin, last.Sender)
	assert.Equal(t, "Technician is on site.", last.Content)
	require.Len(t, published, 1)
	assert.Equal(t, "2", published[0].AggregateID)

	other, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, other.Messages, 2)
}

func TestTicketAppendBlankIsNoop(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	result, err := svc.AppendMessage(ctx, 1, "   \t")
	require.NoError(t, err)
	assert.False(t, result.Appended)
	assert.Len(t, result.Ticket.Messages, 2)

	_, err = svc.AppendMessage(ctx, 42, "hello")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestTicketSetStatus(t *testing.T) {
	svc, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.SetStatus(ctx, 3, models.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, 2, svc.Counts(ctx)[models.TicketStatusOpen])

	_, err = svc.SetStatus(ctx, 3, "Archived")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
