package repository

import "github.com/noah-isme/campus-desk-api/internal/models"

// RoomRepository stores rooms and their availability flags.
type RoomRepository struct {
	items *Collection[models.Room]
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(seed []models.Room) *RoomRepository {
	return &RoomRepository{items: NewCollection(seed, func(r models.Room) string { return r.ID }, models.Room.Clone)}
}

// List returns all rooms in seed order.
func (r *RoomRepository) List() []models.Room {
	return r.items.List()
}

// FindByID returns a room by id.
func (r *RoomRepository) FindByID(id string) (models.Room, error) {
	return r.items.Get(id)
}

// SetAvailability sets the flag on one room.
func (r *RoomRepository) SetAvailability(id string, available bool) (models.Room, error) {
	return r.items.UpdateByID(id, func(room *models.Room) { room.IsAvailable = available })
}

// SetAvailabilityMany sets the flag on every listed room. Unknown ids are ignored.
func (r *RoomRepository) SetAvailabilityMany(ids []string, available bool) []models.Room {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.items.Update(func(room models.Room) bool {
		_, ok := wanted[room.ID]
		return ok
	}, func(room *models.Room) { room.IsAvailable = available })
}
