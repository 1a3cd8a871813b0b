package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/service"
	"github.com/noah-isme/campus-desk-api/pkg/response"
)

// LecturerHandler handles lecturer endpoints.
type LecturerHandler struct {
	service *service.LecturerService
}

// NewLecturerHandler constructs a LecturerHandler.
func NewLecturerHandler(svc *service.LecturerService) *LecturerHandler {
	return &LecturerHandler{service: svc}
}

// List godoc
// @Summary List lecturers
// @Tags Lecturers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lecturers [get]
func (h *LecturerHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()), nil)
}

// Create godoc
// @Summary Add lecturer
// @Tags Lecturers
// @Accept json
// @Produce json
// @Param payload body dto.CreateLecturerRequest true "Lecturer"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /lecturers [post]
func (h *LecturerHandler) Create(c *gin.Context) {
	var req dto.CreateLecturerRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	lecturer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lecturer)
}
