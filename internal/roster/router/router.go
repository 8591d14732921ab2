// Package router provides roster module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/roster/handler"
	"squadhub/internal/roster/repository"
	"squadhub/internal/roster/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers roster module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.GET("/teams/:teamId/roster", h.ListRoster)
	r.PUT("/teams/:teamId/players/:userId/profile", h.UpsertPlayerProfile)
	r.PUT("/teams/:teamId/players/:userId/positions", h.ReplacePositions)
	r.GET("/positions", h.ListPositions)
}
