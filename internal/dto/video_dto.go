package dto

import (
	"time"

	"github.com/google/uuid"
)

type VideoDTO struct {
	Id         uuid.UUID `json:"id"`
	NoteId     uuid.UUID `json:"note_id"`
	YoutubeUrl string    `json:"youtube_url"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}
