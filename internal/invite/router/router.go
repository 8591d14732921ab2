// Package router provides invite module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/invite/handler"
	"squadhub/internal/invite/repository"
	"squadhub/internal/invite/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers invite module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamId/invites", h.CreateInvite)
	r.GET("/teams/:teamId/invites", h.ListInvites)
	r.PUT("/invites/:inviteId/disabled", h.SetDisabled)
	r.POST("/invites/redeem", h.Redeem)
}
