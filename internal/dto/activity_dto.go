package dto

import "github.com/google/uuid"

// PublishActivityMessage is the payload carried on the in-process activity
// topic; the consumer turns it into an activity_logs row.
type PublishActivityMessage struct {
	UserId   uuid.UUID              `json:"user_id"`
	Action   string                 `json:"action"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
