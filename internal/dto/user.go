package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// CreateUserRequest defines the data for creating a user profile.
// Permissions, when present, override the role's default set.
type CreateUserRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Name        string   `json:"name" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	Role        string   `json:"role" binding:"required,oneof=super_admin admin employee client"`
	TenantID    *string  `json:"tenantID"`
	Permissions []string `json:"permissions"`
}

// UpdateUserRequest defines the data allowed for updating a user profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role" binding:"omitempty,oneof=super_admin admin employee client"`
	TenantID    *string  `json:"tenantID"`
	Permissions []string `json:"permissions"`
	IsActive    *bool    `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	TenantID *string `form:"tenantID"`
	Limit    int     `form:"limit,default=20"`
	Offset   int     `form:"offset,default=0"`
}

// UserResponse defines data returned for a user profile.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	TenantID    *string   `json:"tenantID,omitempty"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.UserProfile to DTO.
func ToUserResponse(u *domain.UserProfile) UserResponse {
	perms := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		perms[i] = string(p)
	}
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		TenantID:    u.TenantID,
		Permissions: perms,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.UserProfile to ListUsersResponse.
func ToListUsersResponse(users []domain.UserProfile) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
