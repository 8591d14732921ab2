// Package router provides lineup module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	eventRepository "squadhub/internal/event/repository"
	"squadhub/internal/lineup/handler"
	"squadhub/internal/lineup/repository"
	"squadhub/internal/lineup/service"
	teamRepository "squadhub/internal/team/repository"
)

// RegisterRoutes registers lineup module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, eventRepository.New(db), teamRepository.New(db), logger)
	h := handler.New(svc, logger)

	r.GET("/lineup-templates", h.ListTemplates)
	r.GET("/lineup-templates/:templateId/slots", h.ListTemplateSlots)
	r.POST("/teams/:teamId/lineups", h.CreateFromTemplate)
	r.GET("/teams/:teamId/lineups", h.ListTeamLineups)
	r.GET("/events/:eventId/lineups", h.ListEventLineups)
	r.POST("/lineups/:lineupId/duplicate", h.Duplicate)
	r.GET("/lineups/:lineupId", h.GetLineup)
	r.GET("/lineups/:lineupId/slots", h.ListSlots)
	r.PUT("/lineups/:lineupId/slots/:slotKey", h.SetSlot)
	r.DELETE("/lineups/:lineupId/slots/:slotKey", h.ClearSlot)
	r.PUT("/lineups/:lineupId/slots/:slotKey/group", h.SetSlotGroup)
	r.PUT("/lineups/:lineupId/lock", h.SetLocked)
}
