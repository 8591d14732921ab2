// Package handler provides HTTP handlers for org endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"squadhub/internal/middleware"
	orgModel "squadhub/internal/org/model"
	"squadhub/internal/org/service"
)

// Handler handles HTTP requests for org endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new org handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateOrg handles POST /orgs request.
// @Summary Create an organization
// @Tags Orgs
// @Accept json
// @Produce json
// @Param request body orgModel.CreateOrgRequest true "Request"
// @Success 201 {object} orgModel.Org "Created organization"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /orgs [post]
func (h *Handler) CreateOrg(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req orgModel.CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_REQUEST", "message": "invalid request body"}})
		return
	}

	org, err := h.service.CreateOrg(c.Request.Context(), callerID, req.Name)
	if err != nil {
		if errors.Is(err, orgModel.ErrInvalidOrgName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_REQUEST", "message": "name is required"}})
			return
		}
		h.logger.Errorw("error creating org", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"}})
		return
	}

	c.JSON(http.StatusCreated, org)
}
