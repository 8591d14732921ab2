// Package service provides business logic layer for the org module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	orgModel "squadhub/internal/org/model"
	"squadhub/internal/org/repository"
)

// Service defines the interface for org business logic operations.
type Service interface {
	// CreateOrg creates an organization owned by the caller.
	CreateOrg(ctx context.Context, callerID, name string) (*orgModel.Org, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new org service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateOrg(ctx context.Context, callerID, name string) (*orgModel.Org, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return nil, orgModel.ErrInvalidOrgName
	}

	org := &orgModel.Org{
		Name:      clean,
		CreatedBy: callerID,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.logger.Infow("organization created", "org_id", org.ID)
	return org, nil
}
