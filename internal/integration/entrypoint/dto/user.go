// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/ledgerly/backend/internal/domain/entity"

// UpdateUserRequest represents the request body for updating the user profile.
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Currency  *string `json:"currency,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// UserResponse represents the user profile in API responses.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ToUserResponse converts a user entity to a response DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Currency:  u.Currency,
		AvatarURL: u.AvatarURL,
	}
}
