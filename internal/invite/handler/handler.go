// Package handler provides HTTP handlers for invite endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	inviteModel "squadhub/internal/invite/model"
	"squadhub/internal/invite/service"
	"squadhub/internal/middleware"
	teamModel "squadhub/internal/team/model"
)

// Handler handles HTTP requests for invite endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new invite handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateInvite handles POST /teams/:teamId/invites request.
// @Summary Create a shareable join code for a team
// @Tags Invites
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body inviteModel.CreateInviteRequest true "Request"
// @Success 201 {object} inviteModel.Invite "Created invite"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/invites [post]
func (h *Handler) CreateInvite(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req inviteModel.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	invite, err := h.service.CreateInvite(c.Request.Context(), callerID, c.Param("teamId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// ListInvites handles GET /teams/:teamId/invites request.
// @Summary List a team's invites, newest first
// @Tags Invites
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} inviteModel.InvitesResponse "Invites"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/invites [get]
func (h *Handler) ListInvites(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	invites, err := h.service.ListInvites(c.Request.Context(), callerID, c.Param("teamId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inviteModel.InvitesResponse{Invites: invites})
}

// SetDisabled handles PUT /invites/:inviteId/disabled request.
// @Summary Disable or re-enable an invite
// @Tags Invites
// @Accept json
// @Produce json
// @Param inviteId path string true "Invite ID"
// @Param request body inviteModel.SetDisabledRequest true "Request"
// @Success 200 {object} inviteModel.Invite "Updated invite"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /invites/{inviteId}/disabled [put]
func (h *Handler) SetDisabled(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req inviteModel.SetDisabledRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Disabled == nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	invite, err := h.service.SetDisabled(c.Request.Context(), callerID, c.Param("inviteId"), *req.Disabled)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

// Redeem handles POST /invites/redeem request.
// @Summary Redeem an invite code and join its team
// @Tags Invites
// @Accept json
// @Produce json
// @Param request body inviteModel.RedeemRequest true "Request"
// @Success 200 {object} inviteModel.RedeemResponse "Granted membership"
// @Failure 400 {object} ErrorResponse "Invite disabled, expired or exhausted"
// @Failure 404 {object} ErrorResponse "Unknown code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /invites/redeem [post]
func (h *Handler) Redeem(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req inviteModel.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	granted, err := h.service.Redeem(c.Request.Context(), callerID, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, granted)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inviteModel.ErrInvalidInviteRole):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, inviteModel.ErrInviteNotFound):
		errorResponse(c, "NOT_FOUND", "invite not found", http.StatusNotFound)
	case errors.Is(err, inviteModel.ErrInviteDisabled):
		errorResponse(c, "INVITE_DISABLED", "invite is disabled", http.StatusBadRequest)
	case errors.Is(err, inviteModel.ErrInviteExpired):
		errorResponse(c, "INVITE_EXPIRED", "invite has expired", http.StatusBadRequest)
	case errors.Is(err, inviteModel.ErrInviteExhausted):
		errorResponse(c, "INVITE_EXHAUSTED", "invite has no uses left", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrRoleForbidden):
		errorResponse(c, "FORBIDDEN", "coach or admin role required", http.StatusForbidden)
	default:
		h.logger.Errorw("invite request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
