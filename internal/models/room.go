package models

// Room is a bookable campus space.
type Room struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Building    string   `json:"building" yaml:"building"`
	Floor       int      `json:"floor" yaml:"floor"`
	Capacity    int      `json:"capacity" yaml:"capacity"`
	Features    []string `json:"features" yaml:"features"`
	IsAvailable bool     `json:"is_available" yaml:"is_available"`
}

// Clone returns a copy with its own feature slice.
func (r Room) Clone() Room {
	out := r
	out.Features = append([]string(nil), r.Features...)
	return out
}

// BuildingGroup lists the rooms of one building.
type BuildingGroup struct {
	Building string `json:"building"`
	Rooms    []Room `json:"rooms"`
}

// BulkResult reports the outcome of a bulk availability change.
type BulkResult struct {
	Available bool     `json:"available"`
	RoomIDs   []string `json:"room_ids"`
	Updated   int      `json:"updated"`
}
