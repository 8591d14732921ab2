// Package handler provides HTTP handlers for lineup endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	eventModel "squadhub/internal/event/model"
	lineupModel "squadhub/internal/lineup/model"
	"squadhub/internal/lineup/service"
	"squadhub/internal/middleware"
	teamModel "squadhub/internal/team/model"
)

// Handler handles HTTP requests for lineup endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new lineup handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTemplates handles GET /lineup-templates request.
// @Summary List lineup templates for a sport
// @Tags Lineups
// @Produce json
// @Param sport query string false "Sport, defaults to generic"
// @Success 200 {object} lineupModel.TemplatesResponse "Templates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineup-templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context(), c.Query("sport"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.TemplatesResponse{Templates: templates})
}

// ListTemplateSlots handles GET /lineup-templates/:templateId/slots request.
// @Summary List a template's slots in display order
// @Tags Lineups
// @Produce json
// @Param templateId path string true "Template ID"
// @Success 200 {object} lineupModel.TemplateSlotsResponse "Slots"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineup-templates/{templateId}/slots [get]
func (h *Handler) ListTemplateSlots(c *gin.Context) {
	slots, err := h.service.ListTemplateSlots(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.TemplateSlotsResponse{Slots: slots})
}

// CreateFromTemplate handles POST /teams/:teamId/lineups request.
// @Summary Create a lineup seeded from a template
// @Tags Lineups
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body lineupModel.CreateFromTemplateRequest true "Request"
// @Success 201 {object} lineupModel.Lineup "Created lineup, slots unassigned"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/lineups [post]
func (h *Handler) CreateFromTemplate(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req lineupModel.CreateFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	lineup, err := h.service.CreateFromTemplate(c.Request.Context(), callerID, c.Param("teamId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lineup)
}

// Duplicate handles POST /lineups/:lineupId/duplicate request.
// @Summary Copy a lineup, assignments included, into a new scope
// @Tags Lineups
// @Accept json
// @Produce json
// @Param lineupId path string true "Source lineup ID"
// @Param request body lineupModel.DuplicateRequest true "Request"
// @Success 201 {object} lineupModel.Lineup "Created lineup"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Lineup not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/duplicate [post]
func (h *Handler) Duplicate(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req lineupModel.DuplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	lineup, err := h.service.Duplicate(c.Request.Context(), callerID, c.Param("lineupId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lineup)
}

// ListTeamLineups handles GET /teams/:teamId/lineups request.
// @Summary List all of a team's lineups, newest first
// @Tags Lineups
// @Produce json
// @Param teamId path string true "Team ID"
// @Param default query bool false "Only event-less default lineups"
// @Success 200 {object} lineupModel.LineupsResponse "Lineups"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/lineups [get]
func (h *Handler) ListTeamLineups(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	teamID := c.Param("teamId")

	var lineups []lineupModel.Lineup
	var err error
	if c.Query("default") == "true" {
		lineups, err = h.service.ListTeamDefaultLineups(c.Request.Context(), callerID, teamID)
	} else {
		lineups, err = h.service.ListTeamLineups(c.Request.Context(), callerID, teamID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.LineupsResponse{Lineups: lineups})
}

// ListEventLineups handles GET /events/:eventId/lineups request.
// @Summary List an event's lineups, newest first
// @Tags Lineups
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} lineupModel.LineupsResponse "Lineups"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{eventId}/lineups [get]
func (h *Handler) ListEventLineups(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	lineups, err := h.service.ListEventLineups(c.Request.Context(), callerID, c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.LineupsResponse{Lineups: lineups})
}

// GetLineup handles GET /lineups/:lineupId request.
// @Summary Get a single lineup
// @Tags Lineups
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Success 200 {object} lineupModel.Lineup "Lineup"
// @Failure 404 {object} ErrorResponse "Lineup not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId} [get]
func (h *Handler) GetLineup(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	lineup, err := h.service.GetLineup(c.Request.Context(), callerID, c.Param("lineupId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineup)
}

// ListSlots handles GET /lineups/:lineupId/slots request.
// @Summary List a lineup's labeled slots in display order
// @Tags Lineups
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Success 200 {object} lineupModel.SlotsResponse "Labeled slots"
// @Failure 404 {object} ErrorResponse "Lineup not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	slots, err := h.service.ListSlots(c.Request.Context(), callerID, c.Param("lineupId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.SlotsResponse{Slots: slots})
}

// SetSlot handles PUT /lineups/:lineupId/slots/:slotKey request.
// @Summary Assign a user to a slot; returns the re-read labeled slots
// @Tags Lineups
// @Accept json
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Param slotKey path string true "Slot key"
// @Param request body lineupModel.SetSlotRequest true "Request"
// @Success 200 {object} lineupModel.SlotsResponse "Labeled slots after the write"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Lineup or slot not found"
// @Failure 409 {object} ErrorResponse "Lineup locked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/slots/{slotKey} [put]
func (h *Handler) SetSlot(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req lineupModel.SetSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	slots, err := h.service.SetSlot(c.Request.Context(), callerID, c.Param("lineupId"), c.Param("slotKey"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.SlotsResponse{Slots: slots})
}

// ClearSlot handles DELETE /lineups/:lineupId/slots/:slotKey request.
// @Summary Unassign a slot; returns the re-read labeled slots
// @Tags Lineups
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Param slotKey path string true "Slot key"
// @Success 200 {object} lineupModel.SlotsResponse "Labeled slots after the write"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Lineup or slot not found"
// @Failure 409 {object} ErrorResponse "Lineup locked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/slots/{slotKey} [delete]
func (h *Handler) ClearSlot(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	slots, err := h.service.ClearSlot(c.Request.Context(), callerID, c.Param("lineupId"), c.Param("slotKey"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.SlotsResponse{Slots: slots})
}

// SetSlotGroup handles PUT /lineups/:lineupId/slots/:slotKey/group request.
// @Summary Move a slot between starter and bench
// @Tags Lineups
// @Accept json
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Param slotKey path string true "Slot key"
// @Param request body lineupModel.SetGroupRequest true "Request"
// @Success 200 {object} lineupModel.SlotsResponse "Labeled slots after the write"
// @Failure 400 {object} ErrorResponse "Unknown group"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 409 {object} ErrorResponse "Lineup locked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/slots/{slotKey}/group [put]
func (h *Handler) SetSlotGroup(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req lineupModel.SetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	slots, err := h.service.SetSlotGroup(c.Request.Context(), callerID, c.Param("lineupId"), c.Param("slotKey"), req.Group)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.SlotsResponse{Slots: slots})
}

// SetLocked handles PUT /lineups/:lineupId/lock request.
// @Summary Lock or unlock a lineup; returns the scope's refreshed lineup list
// @Tags Lineups
// @Accept json
// @Produce json
// @Param lineupId path string true "Lineup ID"
// @Param request body lineupModel.SetLockRequest true "Request"
// @Success 200 {object} lineupModel.LineupsResponse "Lineups of the affected scope"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Lineup not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /lineups/{lineupId}/lock [put]
func (h *Handler) SetLocked(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req lineupModel.SetLockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Locked == nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	lineups, err := h.service.SetLocked(c.Request.Context(), callerID, c.Param("lineupId"), *req.Locked)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lineupModel.LineupsResponse{Lineups: lineups})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lineupModel.ErrInvalidSlotGroup):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, lineupModel.ErrLineupLocked):
		errorResponse(c, "LINEUP_LOCKED", "lineup is locked", http.StatusConflict)
	case errors.Is(err, lineupModel.ErrLineupNotFound):
		notFoundResponse(c, "lineup not found")
	case errors.Is(err, lineupModel.ErrTemplateNotFound):
		notFoundResponse(c, "lineup template not found")
	case errors.Is(err, lineupModel.ErrSlotNotFound):
		notFoundResponse(c, "lineup slot not found")
	case errors.Is(err, eventModel.ErrEventNotFound):
		notFoundResponse(c, "event not found")
	case errors.Is(err, teamModel.ErrRoleForbidden):
		errorResponse(c, "FORBIDDEN", "coach or admin role required", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "FORBIDDEN", "caller is not a member of the team", http.StatusForbidden)
	default:
		h.logger.Errorw("lineup request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
