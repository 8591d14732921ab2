// Package model provides domain models and DTOs for the auth module.
package model

import "time"

// Account represents a credentialed user account.
// Matches the accounts table schema.
type Account struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"       json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"           json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// Session represents a live access-token session. The id is the token's
// JTI claim; deleting the row revokes the token before its expiry.
type Session struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index:idx_sessions_user_id" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null"                json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Session) TableName() string {
	return "sessions"
}

// LoginCode is a single-use code for the deferred-link sign-in flow.
// The row is deleted when consumed.
type LoginCode struct {
	Code      string    `gorm:"primaryKey;column:code;type:varchar(64)"                   json:"code"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null"                  json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null"               json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (LoginCode) TableName() string {
	return "login_codes"
}

// SignUpRequest represents the request to create an account.
type SignUpRequest struct {
	Email       string `json:"email"        binding:"required"`
	Password    string `json:"password"     binding:"required"`
	DisplayName string `json:"display_name"`
}

// SignInRequest represents the request to sign in with credentials.
type SignInRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest represents the request to exchange a one-time
// login code for a session.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CodeResponse represents an issued one-time login code.
type CodeResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
