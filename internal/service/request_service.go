package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

const defaultRecentRequests = 4

type requestRepository interface {
	List(filter models.RequestFilter) []models.Request
	FindByID(id string) (models.Request, error)
	UpdateStatus(id string, status models.RequestStatus) (models.Request, error)
}

// RequestService filters and cancels booking and maintenance requests.
type RequestService struct {
	repo       requestRepository
	dispatcher events.Dispatcher
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(repo requestRepository, dispatcher events.Dispatcher, metrics *MetricsService, logger *zap.Logger) *RequestService {
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{repo: repo, dispatcher: dispatcher, metrics: metrics, logger: logger}
}

// List returns requests matching every set filter. "All" or empty disables a filter.
func (s *RequestService) List(ctx context.Context, filter models.RequestFilter) ([]models.Request, *models.Pagination) {
	items := s.repo.List(filter)
	return items, &models.Pagination{Page: 1, PageSize: len(items), TotalCount: len(items)}
}

// Get returns a single request.
func (s *RequestService) Get(ctx context.Context, id string) (*models.Request, error) {
	req, err := s.repo.FindByID(id)
	if err != nil {
		return nil, mapRequestError(err)
	}
	return &req, nil
}

// Cancel moves a request to Cancelled regardless of its current status.
func (s *RequestService) Cancel(ctx context.Context, id string) (*models.Request, error) {
	req, err := s.repo.UpdateStatus(id, models.RequestStatusCancelled)
	if err != nil {
		return nil, mapRequestError(err)
	}
	s.metrics.IncRequestCancel()
	s.logger.Info("request cancelled", zap.String("request_id", id))
	if err := s.dispatcher.Publish(ctx, events.New(events.RequestCancelled, id, nil)); err != nil {
		s.logger.Warn("request event handler failed", zap.String("request_id", id), zap.Error(err))
	}
	return &req, nil
}

// Recent returns the first limit requests in seed order.
func (s *RequestService) Recent(ctx context.Context, limit int) []models.Request {
	if limit <= 0 {
		limit = defaultRecentRequests
	}
	items := s.repo.List(models.RequestFilter{})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func mapRequestError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "request not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to access request")
}
