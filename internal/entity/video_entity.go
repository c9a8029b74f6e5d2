package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a YouTube reference attached to a note. Title is fetched once from
// the Data API at creation time and never refreshed.
type Video struct {
	Id         uuid.UUID
	NoteId     uuid.UUID
	YoutubeUrl string
	Title      string
	CreatedAt  time.Time
}
