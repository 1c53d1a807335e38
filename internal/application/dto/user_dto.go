package dto

import "time"

// RegisterRequest entrada para registro: email, password, nombre.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ProfileResponse salida del perfil del usuario (sin password).
type ProfileResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Bio           string          `json:"bio"`
	AvatarURL     string          `json:"avatar_url"`
	Tier          string          `json:"tier"`
	LoyaltyPoints int64           `json:"loyalty_points"`
	Preferences   map[string]bool `json:"preferences"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
