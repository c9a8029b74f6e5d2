package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a user-created grouping of notes. There is no delete path for
// sessions anywhere in the API.
type Session struct {
	Id        uuid.UUID
	Name      string
	UserId    uuid.UUID
	CreatedAt time.Time
}
