package models

// RequestType distinguishes room bookings from maintenance reports.
type RequestType string

const (
	RequestTypeBooking     RequestType = "Booking"
	RequestTypeMaintenance RequestType = "Maintenance"
)

// RequestStatus enumerates request states shown in the requests table.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "Open"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusResolved   RequestStatus = "Resolved"
	RequestStatusPending    RequestStatus = "Pending"
	RequestStatusApproved   RequestStatus = "Approved"
	RequestStatusCancelled  RequestStatus = "Cancelled"
)

// FilterAll disables a status or type filter.
const FilterAll = "All"

// Request is a booking or maintenance request row.
type Request struct {
	ID          string        `json:"id" yaml:"id"`
	Type        RequestType   `json:"type" yaml:"type"`
	Description string        `json:"description" yaml:"description"`
	Status      RequestStatus `json:"status" yaml:"status"`
	RequestedBy string        `json:"requested_by" yaml:"requested_by"`
	UserID      string        `json:"user_id" yaml:"user_id"`
	Room        string        `json:"room" yaml:"room"`
	Date        string        `json:"date" yaml:"date"`
	Time        *string       `json:"time,omitempty" yaml:"time,omitempty"`
}

// RequestFilter captures the conjunctive filters of the requests table.
type RequestFilter struct {
	Status string
	Type   string
	Search string
}
