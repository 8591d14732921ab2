// Package router provides kit module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/kit/handler"
	"squadhub/internal/kit/repository"
	"squadhub/internal/kit/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers kit module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamId/kits", h.CreateKit)
	r.GET("/teams/:teamId/kits", h.ListKits)
	r.GET("/teams/:teamId/kits/default", h.GetDefaultKit)
	r.PUT("/teams/:teamId/kits/:kitId/numbers/:userId", h.SetKitNumber)
	r.DELETE("/teams/:teamId/kits/:kitId/numbers/:userId", h.ClearKitNumber)
}
