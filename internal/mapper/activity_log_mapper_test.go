package mapper

import (
	"testing"
	"time"

	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestActivityLogMapperMetadataRoundTrip(t *testing.T) {
	m := NewActivityLogMapper()

	src := &entity.ActivityLog{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Action: entity.ActivityNoteCreate,
		Metadata: map[string]interface{}{
			"note_id": "abc",
			"count":   float64(3),
		},
		CreatedAt: time.Now(),
	}

	got := m.ToEntity(m.ToModel(src))
	require.NotNil(t, got)
	assert.Equal(t, src.Action, got.Action)
	assert.Equal(t, "abc", got.Metadata["note_id"])
	assert.Equal(t, float64(3), got.Metadata["count"])
}

func TestActivityLogMapperNilMetadata(t *testing.T) {
	m := NewActivityLogMapper()

	got := m.ToEntity(&model.ActivityLog{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Action: string(entity.ActivityUserLogin),
	})

	require.NotNil(t, got)
	assert.Nil(t, got.Metadata)
}

func TestActivityLogMapperCorruptMetadata(t *testing.T) {
	m := NewActivityLogMapper()

	got := m.ToEntity(&model.ActivityLog{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		Action:   string(entity.ActivityUserLogin),
		Metadata: datatypes.JSON("{not json"),
	})

	require.NotNil(t, got)
	assert.Nil(t, got.Metadata)
}
