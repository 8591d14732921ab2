// Package handler provides HTTP handlers for rsvp endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	"squadhub/internal/middleware"
	rsvpModel "squadhub/internal/rsvp/model"
	"squadhub/internal/rsvp/service"
	teamModel "squadhub/internal/team/model"
)

// Handler handles HTTP requests for rsvp endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new rsvp handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// UpsertMine handles PUT /events/:eventId/rsvp request.
// @Summary Set the caller's RSVP for an event
// @Tags RSVPs
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body rsvpModel.UpsertRSVPRequest true "Request"
// @Success 200 {object} rsvpModel.RSVP "Stored answer"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/rsvp [put]
func (h *Handler) UpsertMine(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req rsvpModel.UpsertRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	rsvp, err := h.service.UpsertMine(c.Request.Context(), callerID, c.Param("eventId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvp)
}

// GetMine handles GET /events/:eventId/rsvp request.
// @Summary Get the caller's RSVP for an event
// @Tags RSVPs
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} rsvpModel.RSVP "Answer, null body fields when not answered"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/rsvp [get]
func (h *Handler) GetMine(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	rsvp, err := h.service.GetMine(c.Request.Context(), callerID, c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rsvp == nil {
		c.JSON(http.StatusOK, gin.H{"rsvp": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rsvp": rsvp})
}

// Summary handles GET /events/:eventId/rsvp-summary request.
// @Summary Get the per-event RSVP tally
// @Tags RSVPs
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} rsvpModel.Summary "Tally recomputed from rows"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/rsvp-summary [get]
func (h *Handler) Summary(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	summary, err := h.service.Summary(c.Request.Context(), callerID, c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListWithNames handles GET /events/:eventId/rsvps request.
// @Summary List all RSVPs for an event with display names
// @Tags RSVPs
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} rsvpModel.CoachRowsResponse "Answers, newest update first"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/rsvps [get]
func (h *Handler) ListWithNames(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	rows, err := h.service.ListWithNames(c.Request.Context(), callerID, c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvpModel.CoachRowsResponse{RSVPs: rows})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rsvpModel.ErrInvalidStatus):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, eventModel.ErrEventNotFound):
		errorResponse(c, "NOT_FOUND", "event not found", http.StatusNotFound)
	case errors.Is(err, teamModel.ErrRoleForbidden):
		errorResponse(c, "FORBIDDEN", "coach or admin role required", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "FORBIDDEN", "caller is not a member of the team", http.StatusForbidden)
	default:
		h.logger.Errorw("rsvp request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
