package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/service"
	"github.com/noah-isme/campus-desk-api/pkg/response"
)

// TicketHandler exposes the maintenance chat.
type TicketHandler struct {
	service *service.TicketService
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(svc *service.TicketService) *TicketHandler {
	return &TicketHandler{service: svc}
}

// List godoc
// @Summary List tickets under a status tab
// @Tags Tickets
// @Produce json
// @Param status query string false "Open (default), In Progress or Resolved"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tab, tickets, err := h.service.FilterByStatus(ctx, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.TicketListResponse{Tab: tab, Tickets: tickets, Counts: h.service.Counts(ctx)}, nil)
}

// Counts godoc
// @Summary Ticket counts per tab
// @Tags Tickets
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tickets/counts [get]
func (h *TicketHandler) Counts(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Counts(c.Request.Context()), nil)
}

// Active godoc
// @Summary Currently selected ticket
// @Tags Tickets
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tickets/active [get]
func (h *TicketHandler) Active(c *gin.Context) {
	ticket, err := h.service.Active(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ticket, nil)
}

// Get godoc
// @Summary Get ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	ticket, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ticket, nil)
}

// Select godoc
// @Summary Open a ticket conversation
// @Description Marks the ticket active and clears its unread flag.
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tickets/{id}/select [post]
func (h *TicketHandler) Select(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	ticket, err := h.service.Select(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ticket, nil)
}

// AppendMessage godoc
// @Summary Send an admin reply
// @Description Blank content is accepted and ignored (appended=false).
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param payload body dto.SendMessageRequest true "Message"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tickets/{id}/messages [post]
func (h *TicketHandler) AppendMessage(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.AppendMessage(c.Request.Context(), id, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Appended {
		response.JSON(c, http.StatusOK, result, nil)
		return
	}
	response.Created(c, result)
}

// SetStatus godoc
// @Summary Change ticket status
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param payload body dto.UpdateTicketStatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tickets/{id}/status [patch]
func (h *TicketHandler) SetStatus(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateTicketStatusRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	ticket, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ticket, nil)
}
