package unitofwork

import (
	"context"

	"video-notetaking-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	NoteRepository() contract.NoteRepository
	VideoRepository() contract.VideoRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
