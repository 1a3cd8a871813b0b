package repository

import (
	"strconv"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

// TicketRepository stores maintenance tickets and their chat history.
type TicketRepository struct {
	items *Collection[models.Ticket]
}

// NewTicketRepository constructs a TicketRepository seeded with tickets.
func NewTicketRepository(seed []models.Ticket) *TicketRepository {
	return &TicketRepository{items: NewCollection(seed, ticketKey, models.Ticket.Clone)}
}

func ticketKey(t models.Ticket) string { return strconv.Itoa(t.ID) }

// List returns every ticket.
func (r *TicketRepository) List() []models.Ticket {
	return r.items.List()
}

// ListByStatus returns tickets with the given status.
func (r *TicketRepository) ListByStatus(status models.TicketStatus) []models.Ticket {
	return r.items.Filter(func(t models.Ticket) bool { return t.Status == status })
}

// FindByID returns a ticket by id.
func (r *TicketRepository) FindByID(id int) (models.Ticket, error) {
	return r.items.Get(strconv.Itoa(id))
}

// Update patches a ticket in place.
func (r *TicketRepository) Update(id int, patch func(*models.Ticket)) (models.Ticket, error) {
	return r.items.UpdateByID(strconv.Itoa(id), patch)
}
