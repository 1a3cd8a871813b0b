package repository

import (
	"strings"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

// RequestRepository stores booking and maintenance requests.
type RequestRepository struct {
	items *Collection[models.Request]
}

// NewRequestRepository constructs a RequestRepository.
func NewRequestRepository(seed []models.Request) *RequestRepository {
	return &RequestRepository{items: NewCollection(seed, func(r models.Request) string { return r.ID }, nil)}
}

// List returns requests matching every set filter.
func (r *RequestRepository) List(filter models.RequestFilter) []models.Request {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	return r.items.Filter(func(req models.Request) bool {
		if isSet(filter.Status) && string(req.Status) != filter.Status {
			return false
		}
		if isSet(filter.Type) && string(req.Type) != filter.Type {
			return false
		}
		if search == "" {
			return true
		}
		for _, field := range []string{req.ID, req.Description, req.RequestedBy, req.UserID, req.Room} {
			if strings.Contains(strings.ToLower(field), search) {
				return true
			}
		}
		return false
	})
}

// FindByID returns a request by id.
func (r *RequestRepository) FindByID(id string) (models.Request, error) {
	return r.items.Get(id)
}

// UpdateStatus overwrites the status of a request.
func (r *RequestRepository) UpdateStatus(id string, status models.RequestStatus) (models.Request, error) {
	return r.items.UpdateByID(id, func(req *models.Request) { req.Status = status })
}

func isSet(value string) bool {
	return value != "" && value != models.FilterAll
}
