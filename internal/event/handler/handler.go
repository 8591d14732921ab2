// Package handler provides HTTP handlers for event endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	"squadhub/internal/event/service"
	"squadhub/internal/middleware"
	teamModel "squadhub/internal/team/model"
)

// Handler handles HTTP requests for event endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new event handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateEvent handles POST /teams/:teamId/events request.
// @Summary Create a team event
// @Tags Events
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body eventModel.CreateEventRequest true "Request"
// @Success 201 {object} eventModel.Event "Created event"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	teamID := c.Param("teamId")

	var req eventModel.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), callerID, teamID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListTeamEvents handles GET /teams/:teamId/events request.
// @Summary List team events ordered by start time
// @Tags Events
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} eventModel.EventsResponse "Events"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/events [get]
func (h *Handler) ListTeamEvents(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	teamID := c.Param("teamId")

	events, err := h.service.ListTeamEvents(c.Request.Context(), callerID, teamID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventModel.EventsResponse{Events: events})
}

// GetEvent handles GET /events/:eventId request.
// @Summary Get a single event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} eventModel.Event "Event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	event, err := h.service.GetEvent(c.Request.Context(), callerID, c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PATCH /events/:eventId request.
// @Summary Partially update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body eventModel.UpdateEventRequest true "Request"
// @Success 200 {object} eventModel.Event "Updated event"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId} [patch]
func (h *Handler) UpdateEvent(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req eventModel.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), callerID, c.Param("eventId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/:eventId request.
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	if err := h.service.DeleteEvent(c.Request.Context(), callerID, c.Param("eventId")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetEventKit handles PUT /events/:eventId/kit request.
// @Summary Bind a kit to an event
// @Tags Events
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body eventModel.SetEventKitRequest true "Request"
// @Success 200 {object} eventModel.Event "Updated event"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/kit [put]
func (h *Handler) SetEventKit(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req eventModel.SetEventKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.service.SetEventKit(c.Request.Context(), callerID, c.Param("eventId"), req.KitID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// EventRoster handles GET /events/:eventId/roster request.
// @Summary List the event roster after eligibility filtering
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Param include_declined query bool false "Keep members whose RSVP is no"
// @Success 200 {object} eventModel.RosterResponse "Filtered roster"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/roster [get]
func (h *Handler) EventRoster(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	includeDeclined, _ := strconv.ParseBool(c.DefaultQuery("include_declined", "false"))

	rows, err := h.service.EventRoster(c.Request.Context(), callerID, c.Param("eventId"), includeDeclined)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventModel.RosterResponse{Roster: rows})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, eventModel.ErrInvalidEventType):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, eventModel.ErrEventNotFound):
		notFoundResponse(c, "event not found")
	case errors.Is(err, teamModel.ErrRoleForbidden):
		forbiddenResponse(c, "coach or admin role required")
	case errors.Is(err, teamModel.ErrNotMember):
		forbiddenResponse(c, "caller is not a member of the team")
	default:
		h.logger.Errorw("event request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
