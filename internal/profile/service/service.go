// Package service provides business logic layer for the profile module.
package service

import (
	"context"

	"go.uber.org/zap"

	profileModel "squadhub/internal/profile/model"
	"squadhub/internal/profile/repository"
	"squadhub/pkg/validate"
)

// Service defines the interface for profile business logic operations.
type Service interface {
	// GetMine returns the caller's profile.
	GetMine(ctx context.Context, callerID string) (*profileModel.Profile, error)

	// UpdateDisplayName validates and stores the caller's display name,
	// returning the stored profile.
	UpdateDisplayName(ctx context.Context, callerID, displayName string) (*profileModel.Profile, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new profile service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetMine returns the caller's profile.
func (s *service) GetMine(ctx context.Context, callerID string) (*profileModel.Profile, error) {
	return s.repo.GetByID(ctx, callerID)
}

// UpdateDisplayName validates and stores the caller's display name.
// Validation happens before any write; an invalid name sends no request.
func (s *service) UpdateDisplayName(ctx context.Context, callerID, displayName string) (*profileModel.Profile, error) {
	clean, err := validate.DisplayName(displayName)
	if err != nil {
		return nil, err
	}

	profile := &profileModel.Profile{
		ID:          callerID,
		DisplayName: &clean,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Infow("display name updated", "user_id", callerID)
	return s.repo.GetByID(ctx, callerID)
}
