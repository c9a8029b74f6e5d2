package model

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId     uuid.UUID `gorm:"type:uuid;not null;index"`
	YoutubeUrl string    `gorm:"type:text;not null"`
	Title      string    `gorm:"type:varchar(512)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Video) TableName() string {
	return "videos"
}
