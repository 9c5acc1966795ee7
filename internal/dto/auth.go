package dto

import (
	"time"

	"github.com/yolda/logistics-api/internal/models"
)

// RegisterRequest is the payload for creating a new user account.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	Locale   *string `json:"locale" binding:"omitempty,max=8"`
}

// LoginRequest holds the credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token to exchange for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse returns a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64               `json:"id"`
	Email     string               `json:"email"`
	Phone     *string              `json:"phone"`
	Locale    string               `json:"locale"`
	Status    models.GenericStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		Locale:    user.Locale,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}
