// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/team/handler"
	"squadhub/internal/team/repository"
	"squadhub/internal/team/service"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.CreateTeam)
	r.GET("/teams", h.ListMyTeams)
	r.GET("/teams/:teamId/role", h.GetMyRole)
	r.GET("/teams/:teamId/members", h.ListMembers)
}
