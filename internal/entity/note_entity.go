package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	UserId    uuid.UUID
	Title     string
	Content   string // rich-text HTML, replaced wholesale on update
	CreatedAt time.Time
	UpdatedAt *time.Time
}
