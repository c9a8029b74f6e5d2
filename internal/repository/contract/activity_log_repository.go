package contract

import (
	"context"

	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
