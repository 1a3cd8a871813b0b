package models

import "time"

// TicketStatus enumerates the maintenance ticket lifecycle. Each status is also a chat tab.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

// TicketStatuses lists statuses in tab order.
var TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved}

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	for _, candidate := range TicketStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Priority enumerates ticket urgency.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderAdmin Sender = "admin"
	SenderUser  Sender = "user"
)

// Message is a single immutable chat entry on a ticket.
type Message struct {
	ID            int       `json:"id" yaml:"id"`
	Content       string    `json:"content" yaml:"content"`
	Sender        Sender    `json:"sender" yaml:"sender"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	AttachmentURL *string   `json:"attachment_url,omitempty" yaml:"attachment_url,omitempty"`
}

// Ticket is a maintenance conversation raised by a campus user.
type Ticket struct {
	ID            int          `json:"id" yaml:"id"`
	RequesterID   string       `json:"requester_id" yaml:"requester_id"`
	RequesterName string       `json:"requester_name" yaml:"requester_name"`
	Title         string       `json:"title" yaml:"title"`
	Location      string       `json:"location" yaml:"location"`
	Priority      Priority     `json:"priority" yaml:"priority"`
	Status        TicketStatus `json:"status" yaml:"status"`
	CreatedAt     time.Time    `json:"created_at" yaml:"created_at"`
	Unread        bool         `json:"unread" yaml:"unread"`
	Messages      []Message    `json:"messages" yaml:"messages"`
}

// Clone returns a deep copy so callers never share the message slice.
func (t Ticket) Clone() Ticket {
	out := t
	out.Messages = append([]Message(nil), t.Messages...)
	return out
}

// TicketCounts holds the tab badge sizes.
type TicketCounts map[TicketStatus]int

// MessageResult reports the ticket after an append attempt.
type MessageResult struct {
	Ticket   Ticket `json:"ticket"`
	Appended bool   `json:"appended"`
}
