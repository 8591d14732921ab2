// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"squadhub/internal/middleware"
	teamModel "squadhub/internal/team/model"
	"squadhub/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team with the creator's initial membership
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.Team "Created team"
// @Failure 400 {object} ErrorResponse "Bad request (INVALID_REQUEST)"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *Handler) CreateTeam(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), callerID, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidCreatorRole) {
			errorResponse(c, "INVALID_REQUEST", "creator_role must be admin or coach", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrOrgNotFound) {
			notFoundResponse(c, "organization not found")
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListMyTeams handles GET /teams request.
// @Summary List teams the caller belongs to
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.Team "Teams, newest first"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *Handler) ListMyTeams(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	teams, err := h.service.ListMyTeams(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Errorw("error listing teams", "user_id", callerID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetMyRole handles GET /teams/:teamId/role request.
// Role is resolved fresh on every request so membership changes made
// elsewhere are reflected on the next screen load.
// @Summary Resolve the caller's role in a team
// @Tags Teams
// @Produce json
// @Success 200 {object} teamModel.RoleResponse "Resolved role; \"none\" when not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/role [get]
func (h *Handler) GetMyRole(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	teamID := c.Param("teamId")

	role, err := h.service.ResolveRole(c.Request.Context(), teamID, callerID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error resolving role", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, teamModel.RoleResponse{TeamID: teamID, Role: role.String()})
}

// ListMembers handles GET /teams/:teamId/members request.
// @Summary List team members with display names
// @Tags Teams
// @Produce json
// @Success 200 {object} teamModel.MembersResponse "Members ordered by join time"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	callerID, _ := middleware.UserID(c)
	teamID := c.Param("teamId")

	resp, err := h.service.ListMembers(c.Request.Context(), teamID, callerID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, teamModel.ErrNotMember) {
			forbiddenResponse(c, "caller is not a member of the team")
			return
		}
		h.logger.Errorw("error listing members", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
