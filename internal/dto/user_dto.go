package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kim0hyeon/CRUDBoard/internal/domain"
)

// SignUpRequest represents the request to register a new user
type SignUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest represents the request to change a password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// UserResponse represents the user response (never carries the password hash)
type UserResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Flagged   bool      `json:"flagged"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the authenticated user plus a bearer token
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse converts domain.User to UserResponse
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Flagged:   user.Flagged,
		CreatedAt: user.CreatedAt,
	}
}
