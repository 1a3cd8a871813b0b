package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/events"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	"github.com/noah-isme/campus-desk-api/pkg/deferred"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

type roomRepository interface {
	List() []models.Room
	FindByID(id string) (models.Room, error)
	SetAvailability(id string, available bool) (models.Room, error)
	SetAvailabilityMany(ids []string, available bool) []models.Room
}

// RoomService manages room availability, the bulk selection and the delayed bulk apply.
type RoomService struct {
	repo       roomRepository
	dispatcher events.Dispatcher
	metrics    *MetricsService
	logger     *zap.Logger
	bulkDelay  time.Duration

	mu       sync.Mutex
	selected []string
	pending  *deferred.Task[models.BulkResult]
}

// NewRoomService constructs a RoomService.
func NewRoomService(repo roomRepository, dispatcher events.Dispatcher, metrics *MetricsService, bulkDelay time.Duration, logger *zap.Logger) *RoomService {
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if bulkDelay < 0 {
		bulkDelay = 0
	}
	return &RoomService{repo: repo, dispatcher: dispatcher, metrics: metrics, logger: logger, bulkDelay: bulkDelay}
}

// List returns every room.
func (s *RoomService) List(ctx context.Context) []models.Room {
	return s.repo.List()
}

// GroupByBuilding groups rooms by building in first-seen order.
func (s *RoomService) GroupByBuilding(ctx context.Context) []models.BuildingGroup {
	groups := make([]models.BuildingGroup, 0)
	index := make(map[string]int)
	for _, room := range s.repo.List() {
		i, ok := index[room.Building]
		if !ok {
			i = len(groups)
			index[room.Building] = i
			groups = append(groups, models.BuildingGroup{Building: room.Building})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}
	return groups
}

// Toggle sets the availability of one room.
func (s *RoomService) Toggle(ctx context.Context, id string, available bool) (*models.Room, error) {
	room, err := s.repo.SetAvailability(id, available)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update room")
	}
	s.metrics.AddRoomToggles("single", 1)
	s.publish(ctx, []string{id}, available)
	return &room, nil
}

// ToggleMany sets availability on every known id and reports how many rooms changed.
func (s *RoomService) ToggleMany(ctx context.Context, ids []string, available bool) models.BulkResult {
	updated := s.repo.SetAvailabilityMany(ids, available)
	result := models.BulkResult{Available: available, RoomIDs: make([]string, 0, len(updated)), Updated: len(updated)}
	for _, room := range updated {
		result.RoomIDs = append(result.RoomIDs, room.ID)
	}
	s.metrics.AddRoomToggles("bulk", result.Updated)
	if result.Updated > 0 {
		s.publish(ctx, result.RoomIDs, available)
	}
	return result
}

// Selection returns the selected room ids in selection order.
func (s *RoomService) Selection(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.selected...)
}

// Select toggles a room's membership in the selection.
func (s *RoomService) Select(ctx context.Context, id string) ([]string, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, selected := range s.selected {
		if selected == id {
			s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
			return append([]string{}, s.selected...), nil
		}
	}
	s.selected = append(s.selected, id)
	return append([]string{}, s.selected...), nil
}

// SelectAll selects every room, or clears the selection when every room is already selected.
func (s *RoomService) SelectAll(ctx context.Context) []string {
	rooms := s.repo.List()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(rooms) > 0 && len(s.selected) == len(rooms) {
		s.selected = nil
		return []string{}
	}
	s.selected = make([]string, 0, len(rooms))
	for _, room := range rooms {
		s.selected = append(s.selected, room.ID)
	}
	return append([]string{}, s.selected...)
}

// DeselectAll clears the selection.
func (s *RoomService) DeselectAll(ctx context.Context) {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// BulkApply applies availability to the selection after the configured delay and then
// clears the selection. Only one bulk apply may be in flight. If ctx ends first the
// apply still completes in the background.
func (s *RoomService) BulkApply(ctx context.Context, available bool) (*models.BulkResult, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, "a bulk update is already in progress")
	}
	if len(s.selected) == 0 {
		s.mu.Unlock()
		return nil, appErrors.Validation("no rooms selected", "room_ids must contain at least one room")
	}
	ids := append([]string{}, s.selected...)
	task := deferred.New(s.bulkDelay, func() (models.BulkResult, error) {
		result := s.ToggleMany(context.Background(), ids, available)
		s.mu.Lock()
		s.selected = nil
		s.pending = nil
		s.mu.Unlock()
		return result, nil
	})
	s.pending = task
	s.mu.Unlock()

	if err := task.Start(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule bulk update")
	}
	s.logger.Info("bulk room update scheduled", zap.Int("rooms", len(ids)), zap.Bool("available", available), zap.Duration("delay", s.bulkDelay))

	result, err := task.Wait(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "bulk update still running")
	}
	return &result, nil
}

// BulkPending reports whether a bulk apply is in flight.
func (s *RoomService) BulkPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *RoomService) publish(ctx context.Context, ids []string, available bool) {
	event := events.New(events.RoomsAvailability, "", map[string]interface{}{"room_ids": ids, "available": available})
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("room event handler failed", zap.Error(err))
	}
}
