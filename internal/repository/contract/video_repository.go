package contract

import (
	"context"

	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Video, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
