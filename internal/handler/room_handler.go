package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/service"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
	"github.com/noah-isme/campus-desk-api/pkg/response"
)

// RoomHandler exposes room availability and the bulk selection.
type RoomHandler struct {
	service   *service.RoomService
	validator interface{ Struct(interface{}) error }
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{service: svc, validator: service.NewValidator()}
}

// List godoc
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()), nil)
}

// Buildings godoc
// @Summary Rooms grouped by building
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms/buildings [get]
func (h *RoomHandler) Buildings(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.GroupByBuilding(c.Request.Context()), nil)
}

// Toggle godoc
// @Summary Set availability of one room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param payload body dto.ToggleRoomRequest true "Availability"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /rooms/{id}/availability [patch]
func (h *RoomHandler) Toggle(c *gin.Context) {
	var req dto.ToggleRoomRequest
	if err := h.bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	room, err := h.service.Toggle(c.Request.Context(), c.Param("id"), *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// ToggleMany godoc
// @Summary Set availability of several rooms
// @Description Unknown room ids are ignored; the response reports how many rooms were updated.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body dto.ToggleRoomsRequest true "Rooms and availability"
// @Success 200 {object} response.Envelope
// @Router /rooms/availability [patch]
func (h *RoomHandler) ToggleMany(c *gin.Context) {
	var req dto.ToggleRoomsRequest
	if err := h.bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.ToggleMany(c.Request.Context(), req.RoomIDs, *req.Available), nil)
}

// Selection godoc
// @Summary Selected rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms/selection [get]
func (h *RoomHandler) Selection(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.SelectionResponse{RoomIDs: h.service.Selection(c.Request.Context())}, nil)
}

// Select godoc
// @Summary Toggle a room in the selection
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /rooms/{id}/select [post]
func (h *RoomHandler) Select(c *gin.Context) {
	ids, err := h.service.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SelectionResponse{RoomIDs: ids}, nil)
}

// SelectAll godoc
// @Summary Select every room, or clear when all are selected
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms/selection [post]
func (h *RoomHandler) SelectAll(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.SelectionResponse{RoomIDs: h.service.SelectAll(c.Request.Context())}, nil)
}

// DeselectAll godoc
// @Summary Clear the selection
// @Tags Rooms
// @Success 204
// @Router /rooms/selection [delete]
func (h *RoomHandler) DeselectAll(c *gin.Context) {
	h.service.DeselectAll(c.Request.Context())
	response.NoContent(c)
}

// BulkApply godoc
// @Summary Apply availability to the selection
// @Description Runs after a fixed delay, then clears the selection. Concurrent calls are rejected.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body dto.BulkApplyRequest true "Availability"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /rooms/selection/apply [post]
func (h *RoomHandler) BulkApply(c *gin.Context) {
	var req dto.BulkApplyRequest
	if err := h.bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.BulkApply(c.Request.Context(), *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

func (h *RoomHandler) bind(c *gin.Context, dest interface{}) error {
	if err := bindJSON(c, dest); err != nil {
		return err
	}
	if err := h.validator.Struct(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}
	return nil
}
