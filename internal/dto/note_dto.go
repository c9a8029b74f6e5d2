package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

type NoteDTO struct {
	Id        uuid.UUID  `json:"id"`
	SessionId uuid.UUID  `json:"session_id"`
	UserId    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
