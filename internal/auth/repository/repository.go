// Package repository provides data access layer for the auth module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "squadhub/internal/auth/model"
)

// Repository defines the interface for auth data access operations.
type Repository interface {
	// CreateAccount inserts an account row.
	CreateAccount(ctx context.Context, account *authModel.Account) error

	// GetAccountByEmail finds an account by email.
	GetAccountByEmail(ctx context.Context, email string) (*authModel.Account, error)

	// EmailExists reports whether an account with the email exists.
	EmailExists(ctx context.Context, email string) (bool, error)

	// CreateSession inserts a session row.
	CreateSession(ctx context.Context, session *authModel.Session) error

	// GetSession finds a session by its JTI.
	GetSession(ctx context.Context, id string) (*authModel.Session, error)

	// DeleteSession removes a session row, revoking its token.
	DeleteSession(ctx context.Context, id string) error

	// CreateLoginCode inserts a one-time login code.
	CreateLoginCode(ctx context.Context, code *authModel.LoginCode) error

	// ConsumeLoginCode atomically fetches and deletes an unexpired login
	// code; a second consumption of the same code fails.
	ConsumeLoginCode(ctx context.Context, code string, now time.Time) (*authModel.LoginCode, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAccount(ctx context.Context, account *authModel.Account) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) GetAccountByEmail(ctx context.Context, email string) (*authModel.Account, error) {
	var account authModel.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	return &account, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&authModel.Account{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CreateSession(ctx context.Context, session *authModel.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) GetSession(ctx context.Context, id string) (*authModel.Session, error) {
	var session authModel.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrInvalidToken
		}
		return nil, err
	}

	return &session, nil
}

func (r *repository) DeleteSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&authModel.Session{}).Error
}

func (r *repository) CreateLoginCode(ctx context.Context, code *authModel.LoginCode) error {
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(code).Error
}

// ConsumeLoginCode atomically fetches and deletes an unexpired login code.
func (r *repository) ConsumeLoginCode(ctx context.Context, code string, now time.Time) (*authModel.LoginCode, error) {
	var row authModel.LoginCode

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Where("code = ? AND expires_at > ?", code, now).First(&row).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				return authModel.ErrCodeInvalid
			}
			return txErr
		}
		return tx.Where("code = ?", code).Delete(&authModel.LoginCode{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}
