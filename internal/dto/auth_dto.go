package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionTokenDTO mirrors the shape of the managed auth provider's session
// object that the clients already consume.
type SessionTokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	ExpiresAt   int64  `json:"expires_at"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	Session SessionTokenDTO `json:"session"`
	User    UserDTO         `json:"user"`
}

type SignupResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}
