package dto

import (
	"time"

	"github.com/gocode/elearning/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64         `json:"expiresIn" example:"86400"`
	User        *UserResponse `json:"user,omitempty"`
}

// RegisterRequest represents a user registration request. Admin accounts are only
// created by the setup tool.
type RegisterRequest struct {
	Username  string      `json:"username" binding:"required,min=3,max=150"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=8"`
	FirstName string      `json:"firstName" binding:"max=150"`
	LastName  string      `json:"lastName" binding:"max=150"`
	Role      models.Role `json:"role" binding:"required,oneof=student instructor" example:"student"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model onto its public representation
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
