package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for creating an account.
// @Description Account registration payload.
type RegisterRequest struct {
	// Unique username (3-64 characters)
	Username string `json:"username" validate:"required,notblank,min=3,max=64" example:"minh"`
	// Password (6-128 characters)
	Password string `json:"password" validate:"required,min=6,max=128" example:"ngu-ngon-8h"`
}

// LoginRequest is the request body for logging in.
// @Description Login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"minh"`
	Password string `json:"password" validate:"required" example:"ngu-ngon-8h"`
}

// AuthResponse is returned after a successful registration or login.
// @Description Session issued to an authenticated user.
type AuthResponse struct {
	// User ID to use in /v1/users/{userId} routes
	UserID   uuid.UUID `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string    `json:"username" example:"minh"`
	// Bearer token for the Authorization header
	Token string `json:"token"`
	// Token expiry (UTC)
	ExpiresAt time.Time `json:"expires_at" example:"2024-02-15T07:00:00Z"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
