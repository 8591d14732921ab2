// Package handler provides HTTP handlers for kit endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	kitModel "squadhub/internal/kit/model"
	"squadhub/internal/kit/service"
	"squadhub/internal/middleware"
	teamModel "squadhub/internal/team/model"
	"squadhub/pkg/validate"
)

// Handler handles HTTP requests for kit endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new kit handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateKit handles POST /teams/:teamId/kits request.
// @Summary Create a kit for a team
// @Tags Kits
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body kitModel.CreateKitRequest true "Request"
// @Success 201 {object} kitModel.Kit "Created kit"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/kits [post]
func (h *Handler) CreateKit(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req kitModel.CreateKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	kit, err := h.service.CreateKit(c.Request.Context(), callerID, c.Param("teamId"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, kit)
}

// ListKits handles GET /teams/:teamId/kits request.
// @Summary List a team's kits, default first
// @Tags Kits
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} kitModel.KitsResponse "Kits"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/kits [get]
func (h *Handler) ListKits(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	kits, err := h.service.ListKits(c.Request.Context(), callerID, c.Param("teamId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kitModel.KitsResponse{Kits: kits})
}

// GetDefaultKit handles GET /teams/:teamId/kits/default request.
// @Summary Get a team's default kit
// @Tags Kits
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} kitModel.Kit "Default kit"
// @Failure 404 {object} ErrorResponse "No default kit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/kits/default [get]
func (h *Handler) GetDefaultKit(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	kit, err := h.service.GetDefaultKit(c.Request.Context(), callerID, c.Param("teamId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kit)
}

// SetKitNumber handles PUT /teams/:teamId/kits/:kitId/numbers/:userId request.
// @Summary Assign a member's jersey number for a kit
// @Tags Kits
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param kitId path string true "Kit ID"
// @Param userId path string true "Member user ID"
// @Param request body kitModel.SetKitNumberRequest true "Request"
// @Success 200 {object} kitModel.KitNumber "Stored number"
// @Failure 400 {object} ErrorResponse "Jersey number out of range"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 404 {object} ErrorResponse "Kit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/kits/{kitId}/numbers/{userId} [put]
func (h *Handler) SetKitNumber(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req kitModel.SetKitNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JerseyNumber == nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	number, err := h.service.SetKitNumber(c.Request.Context(), callerID, c.Param("teamId"), c.Param("kitId"), c.Param("userId"), *req.JerseyNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, number)
}

// ClearKitNumber handles DELETE /teams/:teamId/kits/:kitId/numbers/:userId request.
// @Summary Remove a member's jersey number for a kit
// @Tags Kits
// @Produce json
// @Param teamId path string true "Team ID"
// @Param kitId path string true "Kit ID"
// @Param userId path string true "Member user ID"
// @Success 204 "Number removed"
// @Failure 403 {object} ErrorResponse "Role insufficient"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/kits/{kitId}/numbers/{userId} [delete]
func (h *Handler) ClearKitNumber(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	if err := h.service.ClearKitNumber(c.Request.Context(), callerID, c.Param("teamId"), c.Param("kitId"), c.Param("userId")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, kitModel.ErrInvalidKitName):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, validate.ErrJerseyNumberOutOfRange):
		errorResponse(c, "VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, kitModel.ErrKitNotFound):
		errorResponse(c, "NOT_FOUND", "kit not found", http.StatusNotFound)
	case errors.Is(err, kitModel.ErrNoDefaultKit):
		errorResponse(c, "NOT_FOUND", "team has no default kit", http.StatusNotFound)
	case errors.Is(err, teamModel.ErrRoleForbidden):
		errorResponse(c, "FORBIDDEN", "coach or admin role required", http.StatusForbidden)
	case errors.Is(err, teamModel.ErrNotMember):
		errorResponse(c, "FORBIDDEN", "caller is not a member of the team", http.StatusForbidden)
	default:
		h.logger.Errorw("kit request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
