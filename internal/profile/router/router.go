// Package router provides profile module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/profile/handler"
	"squadhub/internal/profile/repository"
	"squadhub/internal/profile/service"
)

// RegisterRoutes registers profile module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/profiles/me", h.GetMine)
	r.PUT("/profiles/me", h.UpdateMine)
}
