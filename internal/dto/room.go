package dto

// ToggleRoomRequest sets availability on a single room.
type ToggleRoomRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// ToggleRoomsRequest sets availability on several rooms at once.
type ToggleRoomsRequest struct {
	RoomIDs   []string `json:"room_ids" validate:"required,min=1,dive,required"`
	Available *bool    `json:"available" validate:"required"`
}

// BulkApplyRequest applies availability to the current selection.
type BulkApplyRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// SelectionResponse lists the selected room ids.
type SelectionResponse struct {
	RoomIDs []string `json:"room_ids"`
}
