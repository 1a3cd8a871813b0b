package dto

import "github.com/noah-isme/campus-desk-api/internal/models"

// SendMessageRequest captures POST /tickets/:id/messages payload.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// UpdateTicketStatusRequest captures PATCH /tickets/:id/status payload.
type UpdateTicketStatusRequest struct {
	Status models.TicketStatus `json:"status" validate:"required"`
}

// TicketListResponse pairs the tab listing with badge counts.
type TicketListResponse struct {
	Tab     models.TicketStatus `json:"tab"`
	Tickets []models.Ticket     `json:"tickets"`
	Counts  models.TicketCounts `json:"counts"`
}
