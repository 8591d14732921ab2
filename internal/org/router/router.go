// Package router provides org module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/org/handler"
	"squadhub/internal/org/repository"
	"squadhub/internal/org/service"
)

// RegisterRoutes registers org module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/orgs", h.CreateOrg)
}
