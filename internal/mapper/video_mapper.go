package mapper

import (
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/model"
)

type VideoMapper struct{}

func NewVideoMapper() *VideoMapper {
	return &VideoMapper{}
}

func (m *VideoMapper) ToEntity(v *model.Video) *entity.Video {
	if v == nil {
		return nil
	}
	return &entity.Video{
		Id:         v.Id,
		NoteId:     v.NoteId,
		YoutubeUrl: v.YoutubeUrl,
		Title:      v.Title,
		CreatedAt:  v.CreatedAt,
	}
}

func (m *VideoMapper) ToModel(v *entity.Video) *model.Video {
	if v == nil {
		return nil
	}
	return &model.Video{
		Id:         v.Id,
		NoteId:     v.NoteId,
		YoutubeUrl: v.YoutubeUrl,
		Title:      v.Title,
		CreatedAt:  v.CreatedAt,
	}
}

func (m *VideoMapper) ToEntities(videos []*model.Video) []*entity.Video {
	entities := make([]*entity.Video, len(videos))
	for i, v := range videos {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
