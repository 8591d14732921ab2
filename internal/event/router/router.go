// Package router provides event module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"squadhub/internal/event/handler"
	"squadhub/internal/event/repository"
	"squadhub/internal/event/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers event module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.POST("/teams/:teamId/events", h.CreateEvent)
	r.GET("/teams/:teamId/events", h.ListTeamEvents)
	r.GET("/events/:eventId", h.GetEvent)
	r.PATCH("/events/:eventId", h.UpdateEvent)
	r.DELETE("/events/:eventId", h.DeleteEvent)
	r.PUT("/events/:eventId/kit", h.SetEventKit)
	r.GET("/events/:eventId/roster", h.EventRoster)
}
