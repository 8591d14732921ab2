// Package router provides rsvp module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	eventRepository "squadhub/internal/event/repository"
	"squadhub/internal/rsvp/handler"
	"squadhub/internal/rsvp/repository"
	"squadhub/internal/rsvp/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers rsvp module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, eventRepository.New(db), teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.PUT("/events/:eventId/rsvp", h.UpsertMine)
	r.GET("/events/:eventId/rsvp", h.GetMine)
	r.GET("/events/:eventId/rsvp-summary", h.Summary)
	r.GET("/events/:eventId/rsvps", h.ListWithNames)
}
