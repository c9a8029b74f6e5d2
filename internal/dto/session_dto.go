package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Name string `json:"name" validate:"required"`
}

type SessionDTO struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
