// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "squadhub/internal/auth/model"
	"squadhub/internal/auth/service"
	"squadhub/internal/middleware"
	"squadhub/pkg/validate"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SignUp handles POST /auth/signup request.
// @Summary Register an account and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authModel.SignUpRequest true "Request"
// @Success 201 {object} authModel.TokenResponse "Issued token"
// @Failure 400 {object} ErrorResponse "Bad request (VALIDATION)"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req authModel.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION", "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.SignUp(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authModel.ErrInvalidEmail):
			errorResponse(c, "VALIDATION", "invalid email address", http.StatusBadRequest)
		case errors.Is(err, authModel.ErrPasswordTooShort):
			errorResponse(c, "VALIDATION", "password must be at least 8 characters", http.StatusBadRequest)
		case errors.Is(err, validate.ErrDisplayNameTooShort), errors.Is(err, validate.ErrDisplayNameTooLong):
			errorResponse(c, "VALIDATION", err.Error(), http.StatusBadRequest)
		case errors.Is(err, authModel.ErrEmailTaken):
			errorResponse(c, "EMAIL_TAKEN", "email already registered", http.StatusConflict)
		default:
			h.logger.Errorw("failed to sign up", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, token)
}

// SignIn handles POST /auth/signin request.
// @Summary Verify credentials and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authModel.SignInRequest true "Request"
// @Success 200 {object} authModel.TokenResponse "Issued token"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req authModel.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION", "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			errorResponse(c, "UNAUTHORIZED", "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("failed to sign in", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, token)
}

// SignOut handles POST /auth/signout request.
// @Summary Revoke the session carried by the bearer token
// @Tags Auth
// @Produce json
// @Success 204 "Session revoked"
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/signout [post]
func (h *Handler) SignOut(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		errorResponse(c, "UNAUTHORIZED", "missing bearer token", http.StatusUnauthorized)
		return
	}

	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		if errors.Is(err, authModel.ErrInvalidToken) {
			errorResponse(c, "UNAUTHORIZED", "invalid token", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("failed to sign out", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// IssueCode handles POST /auth/code request.
// @Summary Issue a one-time login code for another device
// @Tags Auth
// @Produce json
// @Success 201 {object} authModel.CodeResponse "Issued code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/code [post]
func (h *Handler) IssueCode(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	code, err := h.service.IssueLoginCode(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Errorw("failed to issue login code", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, code)
}

// ExchangeCode handles POST /auth/exchange request.
// @Summary Exchange a one-time login code for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authModel.ExchangeCodeRequest true "Request"
// @Success 200 {object} authModel.TokenResponse "Issued token"
// @Failure 400 {object} ErrorResponse "Unknown or expired code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/exchange [post]
func (h *Handler) ExchangeCode(c *gin.Context) {
	var req authModel.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION", "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, authModel.ErrCodeInvalid) {
			errorResponse(c, "CODE_INVALID", "unknown or expired code", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("failed to exchange login code", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, token)
}

// bearerToken extracts the token value from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
