package dto

import "jobmarket_backend/internal/models"

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	FullName string          `json:"fullName"`
	Bio      string          `json:"bio"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	City     string          `json:"city"`
	Role     models.UserRole `json:"role"`
}

// UserUpdateRequest is a partial update; nil fields stay unchanged.
type UserUpdateRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	City     *string `json:"city"`
}
