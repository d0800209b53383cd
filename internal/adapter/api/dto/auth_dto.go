package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/user"
)

// LoginRequest is the credentials payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// RefreshTokenRequest asks for a new token from a still-valid one
type RefreshTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RefreshTokenResponse carries the re-issued token
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserRequest is the create payload for a user account
type UserRequest struct {
	BranchID string    `json:"branch_id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=6"`
	Role     user.Role `json:"role" binding:"required"`
}

// UserResponse is the user payload returned to clients. The password
// hash never leaves the server.
type UserResponse struct {
	ID          string      `json:"id"`
	BranchID    string      `json:"branch_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        user.Role   `json:"role"`
	Status      user.Status `json:"status"`
	LastLoginAt time.Time   `json:"last_login_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// UserListResponse is a paginated user list
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converts a domain user to its DTO
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		BranchID:    u.BranchID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse converts a domain user list to its DTO
func ToUserListResponse(users []*user.User, total, page, size int) *UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = *ToUserResponse(u)
	}

	return &UserListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
