package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

type ticketRepository interface {
	List() []models.Ticket
	ListByStatus(status models.TicketStatus) []models.Ticket
	FindByID(id int) (models.Ticket, error)
	Update(id int, patch func(*models.Ticket)) (models.Ticket, error)
}

// TicketService drives the maintenance chat: tab filtering, selection, messaging and status.
type TicketService struct {
	repo       ticketRepository
	dispatcher events.Dispatcher
	metrics    *MetricsService
	logger     *zap.Logger
	now        func() time.Time

	mu        sync.RWMutex
	activeID  int
	hasActive bool
}

// NewTicketService constructs a TicketService.
func NewTicketService(repo ticketRepository, dispatcher events.Dispatcher, metrics *MetricsService, logger *zap.Logger) *TicketService {
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{repo: repo, dispatcher: dispatcher, metrics: metrics, logger: logger, now: time.Now}
}

// List returns every ticket.
func (s *TicketService) List(ctx context.Context) []models.Ticket {
	return s.repo.List()
}

// FilterByStatus returns the tickets shown under a tab. An empty tab means Open.
func (s *TicketService) FilterByStatus(ctx context.Context, tab string) (models.TicketStatus, []models.Ticket, error) {
	status := models.TicketStatus(tab)
	if tab == "" {
		status = models.TicketStatusOpen
	}
	if !status.Valid() {
		return "", nil, appErrors.Validation("invalid ticket tab", "status must be one of [Open, In Progress, Resolved]")
	}
	return status, s.repo.ListByStatus(status), nil
}

// Counts returns the number of tickets under each tab.
func (s *TicketService) Counts(ctx context.Context) models.TicketCounts {
	counts := make(models.TicketCounts, len(models.TicketStatuses))
	for _, status := range models.TicketStatuses {
		counts[status] = 0
	}
	for _, ticket := range s.repo.List() {
		counts[ticket.Status]++
	}
	return counts
}

// Get returns a ticket without changing selection.
func (s *TicketService) Get(ctx context.Context, id int) (*models.Ticket, error) {
	ticket, err := s.repo.FindByID(id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &ticket, nil
}

// Select makes the ticket active and clears its unread flag.
func (s *TicketService) Select(ctx context.Context, id int) (*models.Ticket, error) {
	ticket, err := s.repo.FindByID(id)
	if err != nil {
		return nil, s.mapError(err)
	}
	if ticket.Unread {
		ticket, err = s.repo.Update(id, func(t *models.Ticket) { t.Unread = false })
		if err != nil {
			return nil, s.mapError(err)
		}
	}
	s.mu.Lock()
	s.activeID, s.hasActive = id, true
	s.mu.Unlock()
	return &ticket, nil
}

// Active returns the selected ticket, or nil before any selection.
func (s *TicketService) Active(ctx context.Context) (*models.Ticket, error) {
	s.mu.RLock()
	id, ok := s.activeID, s.hasActive
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return s.Get(ctx, id)
}

// AppendMessage adds an admin reply. Blank content leaves the ticket untouched.
func (s *TicketService) AppendMessage(ctx context.Context, id int, content string) (*models.MessageResult, error) {
	if strings.TrimSpace(content) == "" {
		ticket, err := s.repo.FindByID(id)
		if err != nil {
			return nil, s.mapError(err)
		}
		return &models.MessageResult{Ticket: ticket, Appended: false}, nil
	}

	timestamp := s.now().UTC()
	ticket, err := s.repo.Update(id, func(t *models.Ticket) {
		t.Messages = append(t.Messages, models.Message{
			ID:        len(t.Messages) + 1,
			Content:   content,
			Sender:    models.SenderAdmin,
			Timestamp: timestamp,
		})
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.metrics.IncTicketMessage()
	s.publish(ctx, events.New(events.TicketMessageAdded, strconv.Itoa(id), map[string]interface{}{
		"message_id": len(ticket.Messages),
	}))
	return &models.MessageResult{Ticket: ticket, Appended: true}, nil
}

// SetStatus overwrites the ticket status.
func (s *TicketService) SetStatus(ctx context.Context, id int, status models.TicketStatus) (*models.Ticket, error) {
	if !status.Valid() {
		return nil, appErrors.Validation("invalid ticket status", "status must be one of [Open, In Progress, Resolved]")
	}
	var previous models.TicketStatus
	ticket, err := s.repo.Update(id, func(t *models.Ticket) {
		previous = t.Status
		t.Status = status
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.metrics.IncTicketStatus(status)
	s.publish(ctx, events.New(events.TicketStatusChanged, strconv.Itoa(id), map[string]interface{}{
		"from": string(previous),
		"to":   string(status),
	}))
	return &ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("ticket event handler failed", zap.String("event", string(event.Type)), zap.String("ticket_id", event.AggregateID), zap.Error(err))
	}
}

func (s *TicketService) mapError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "ticket not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to access ticket")
}
