// Package handler provides HTTP handlers for profile endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"squadhub/internal/middleware"
	profileModel "squadhub/internal/profile/model"
	"squadhub/internal/profile/service"
	"squadhub/pkg/validate"
)

// Handler handles HTTP requests for profile endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new profile handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code, message string, status int) {
	c.JSON(status, ErrorResponse{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// GetMine handles GET /profiles/me request.
// @Summary Get the caller's profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} profileModel.Profile "Profile"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /profiles/me [get]
func (h *Handler) GetMine(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	profile, err := h.service.GetMine(c.Request.Context(), callerID)
	if err != nil {
		if errors.Is(err, profileModel.ErrProfileNotFound) {
			errorResponse(c, "NOT_FOUND", "profile not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting profile", "user_id", callerID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMine handles PUT /profiles/me request.
// @Summary Update the caller's display name
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body profileModel.UpdateProfileRequest true "Request"
// @Success 200 {object} profileModel.Profile "Updated profile"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /profiles/me [put]
func (h *Handler) UpdateMine(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req profileModel.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateDisplayName(c.Request.Context(), callerID, req.DisplayName)
	if err != nil {
		if errors.Is(err, validate.ErrDisplayNameTooShort) || errors.Is(err, validate.ErrDisplayNameTooLong) {
			errorResponse(c, "VALIDATION", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating profile", "user_id", callerID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}
