package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActivityUserLogin     ActivityAction = "USER_LOGIN"
	ActivityUserSignup    ActivityAction = "USER_SIGNUP"
	ActivitySessionCreate ActivityAction = "SESSION_CREATED"
	ActivityNoteCreate    ActivityAction = "NOTE_CREATED"
	ActivityNoteUpdate    ActivityAction = "NOTE_UPDATED"
	ActivityVideoCreate   ActivityAction = "VIDEO_CREATED"
)

// ActivityLog is an audit row persisted asynchronously by the consumer
// pipeline, never on the request path.
type ActivityLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Action    ActivityAction
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
