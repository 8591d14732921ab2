// Package handler provides HTTP handlers for roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"squadhub/internal/middleware"
	rosterModel "squadhub/internal/roster/model"
	"squadhub/internal/roster/service"
	teamModel "squadhub/internal/team/model"
	"squadhub/pkg/validate"
)

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListRoster handles GET /teams/:teamId/roster request.
// @Summary List the team roster with jersey numbers and positions
// @Tags Roster
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} rosterModel.RosterResponse "Roster ordered by display name"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/roster [get]
func (h *Handler) ListRoster(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	rows, err := h.service.ListRoster(c.Request.Context(), callerID, c.Param("teamId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rosterModel.RosterResponse{Roster: rows})
}

// UpsertPlayerProfile handles PUT /teams/:teamId/players/:userId/profile request.
// @Summary Set a member's per-team profile (jersey, active flag, note)
// @Tags Roster
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param userId path string true "Member user ID"
// @Param request body rosterModel.UpsertPlayerProfileRequest true "Request"
// @Success 200 {object} rosterModel.PlayerProfile "Stored profile"
// @Failure 400 {object} ErrorResponse "Jersey number out of range"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/players/{userId}/profile [put]
func (h *Handler) UpsertPlayerProfile(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req rosterModel.UpsertPlayerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpsertPlayerProfile(c.Request.Context(), callerID, c.Param("teamId"), c.Param("userId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ReplacePositions handles PUT /teams/:teamId/players/:userId/positions request.
// @Summary Replace a member's position set
// @Tags Roster
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param userId path string true "Member user ID"
// @Param request body rosterModel.ReplacePositionsRequest true "Request"
// @Success 204 "Positions replaced"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/players/{userId}/positions [put]
func (h *Handler) ReplacePositions(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req rosterModel.ReplacePositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ReplacePositions(c.Request.Context(), callerID, c.Param("teamId"), c.Param("userId"), &req); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPositions handles GET /positions request.
// @Summary List the selectable positions of a sport
// @Tags Roster
// @Produce json
// @Param sport query string false "Sport, defaults to generic"
// @Success 200 {object} rosterModel.PositionsResponse "Positions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /positions [get]
func (h *Handler) ListPositions(c *gin.Context) {
	positions, err := h.service.ListPositions(c.Request.Context(), c.Query("sport"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rosterModel.PositionsResponse{Positions: positions})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrJerseyNumberOutOfRange):
		errorResponse(c, "VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, rosterModel.ErrPriorityMismatch):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrRoleForbidden):
		errorResponse(c, "FORBIDDEN", "coach or admin role required", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "FORBIDDEN", "caller is not a member of the team", http.StatusForbidden)
	default:
		h.logger.Errorw("roster request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
