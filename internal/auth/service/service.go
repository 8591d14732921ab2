// Package service provides business logic layer for the auth module.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "squadhub/internal/auth/model"
	"squadhub/internal/auth/repository"
	appConfig "squadhub/internal/config"
	profileModel "squadhub/internal/profile/model"
	profileRepository "squadhub/internal/profile/repository"
	"squadhub/pkg/validate"
)

const minPasswordLen = 8

// Service defines the interface for auth business logic operations.
type Service interface {
	// SignUp creates an account with its profile and issues a token.
	SignUp(ctx context.Context, req *authModel.SignUpRequest) (*authModel.TokenResponse, error)

	// SignIn verifies credentials and issues a token.
	SignIn(ctx context.Context, req *authModel.SignInRequest) (*authModel.TokenResponse, error)

	// SignOut revokes the session carried by the token.
	SignOut(ctx context.Context, token string) error

	// IssueLoginCode creates a one-time code the caller can hand to
	// another device for the deferred-link sign-in flow.
	IssueLoginCode(ctx context.Context, callerID string) (*authModel.CodeResponse, error)

	// ExchangeCode consumes a one-time login code and issues a token.
	ExchangeCode(ctx context.Context, code string) (*authModel.TokenResponse, error)

	// ValidateToken checks signature, expiry and session liveness and
	// returns the authenticated user id. Satisfies middleware.TokenValidator.
	ValidateToken(ctx context.Context, token string) (string, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, db *gorm.DB, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// SignUp creates an account with its profile and issues a token.
func (s *service) SignUp(ctx context.Context, req *authModel.SignUpRequest) (*authModel.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, authModel.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLen {
		return nil, authModel.ErrPasswordTooShort
	}

	var displayName *string
	if req.DisplayName != "" {
		clean, err := validate.DisplayName(req.DisplayName)
		if err != nil {
			return nil, err
		}
		displayName = &clean
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, authModel.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	account := &authModel.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := repository.New(tx).CreateAccount(ctx, account); txErr != nil {
			return txErr
		}
		return profileRepository.New(tx).Upsert(ctx, &profileModel.Profile{
			ID:          account.ID,
			DisplayName: displayName,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("account created", "user_id", account.ID)
	return s.issueToken(ctx, account.ID)
}

// SignIn verifies credentials and issues a token.
func (s *service) SignIn(ctx context.Context, req *authModel.SignInRequest) (*authModel.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, authModel.ErrInvalidCredentials
	}

	return s.issueToken(ctx, account.ID)
}

// SignOut revokes the session carried by the token.
func (s *service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	return s.repo.DeleteSession(ctx, claims.ID)
}

// IssueLoginCode creates a one-time code for the caller.
func (s *service) IssueLoginCode(ctx context.Context, callerID string) (*authModel.CodeResponse, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	code := &authModel.LoginCode{
		Code:      hex.EncodeToString(buf),
		UserID:    callerID,
		ExpiresAt: time.Now().Add(s.cfg.LoginCodeTTL),
	}
	if err := s.repo.CreateLoginCode(ctx, code); err != nil {
		return nil, err
	}

	return &authModel.CodeResponse{Code: code.Code, ExpiresAt: code.ExpiresAt}, nil
}

// ExchangeCode consumes a one-time login code and issues a token.
func (s *service) ExchangeCode(ctx context.Context, code string) (*authModel.TokenResponse, error) {
	row, err := s.repo.ConsumeLoginCode(ctx, code, time.Now())
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, row.UserID)
}

// ValidateToken checks signature, expiry and session liveness.
func (s *service) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}

	session, err := s.repo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if session.UserID != claims.Subject {
		return "", authModel.ErrInvalidToken
	}
	if time.Now().After(session.ExpiresAt) {
		return "", authModel.ErrInvalidToken
	}

	return session.UserID, nil
}

// issueToken creates a session row and signs an access token for it.
func (s *service) issueToken(ctx context.Context, userID string) (*authModel.TokenResponse, error) {
	now := time.Now()
	session := &authModel.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.cfg.AccessTokenTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authModel.TokenResponse{
		UserID:      userID,
		AccessToken: signed,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// parseToken verifies the signature and returns the registered claims.
func (s *service) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, authModel.ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, authModel.ErrInvalidToken
	}
	return claims, nil
}
