// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/auth/handler"
	"squadhub/internal/auth/repository"
	"squadhub/internal/auth/service"
	appConfig "squadhub/internal/config"
)

// NewService wires the auth service used both by routes and by the
// authentication middleware.
func NewService(db *gorm.DB, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) service.Service {
	return service.New(repository.New(db), db, cfg, logger)
}

// RegisterPublicRoutes registers routes that do not require a token.
func RegisterPublicRoutes(r gin.IRoutes, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/auth/exchange", h.ExchangeCode)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func RegisterProtectedRoutes(r gin.IRoutes, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/auth/signout", h.SignOut)
	r.POST("/auth/code", h.IssueCode)
}
