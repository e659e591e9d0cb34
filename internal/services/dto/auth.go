package dto

// RegisterRequest mirrors the public registration payload. Role is validated
// against the known roles; admin self-registration is rejected in the service.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Bio      string `json:"bio"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}
