package mapper

import (
	"encoding/json"

	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(a.Metadata) > 0 {
		// Corrupt metadata is tolerated; the row is still useful without it.
		_ = json.Unmarshal(a.Metadata, &metadata)
	}

	return &entity.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    entity.ActivityAction(a.Action),
		Metadata:  metadata,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}

	var metadata datatypes.JSON
	if a.Metadata != nil {
		if raw, err := json.Marshal(a.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    string(a.Action),
		Metadata:  metadata,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
