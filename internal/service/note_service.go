package service

import (
	"context"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"
	"video-notetaking-be/internal/repository/unitofwork"
	pktNats "video-notetaking-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteDTO, error)
	GetBySession(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.NoteDTO, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Verify session ownership before attaching a note to it
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotOwned
	}

	note := &entity.Note{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		UserId:    userId,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityNoteCreate), map[string]interface{}{
		"note_id":    note.Id,
		"session_id": note.SessionId,
		"user_id":    userId,
	})
	publishActivity(ctx, s.publisherService, userId, entity.ActivityNoteCreate, map[string]interface{}{
		"note_id":    note.Id,
		"session_id": note.SessionId,
	})

	return toNoteDTO(note), nil
}

func (s *noteService) GetBySession(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotOwned
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		result = append(result, *toNoteDTO(note))
	}
	return result, nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotOwned
	}

	// Content is replaced wholesale; the editor always sends the full document
	now := time.Now()
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityNoteUpdate), map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
	})
	publishActivity(ctx, s.publisherService, userId, entity.ActivityNoteUpdate, map[string]interface{}{
		"note_id": note.Id,
	})

	return toNoteDTO(note), nil
}

func toNoteDTO(note *entity.Note) *dto.NoteDTO {
	return &dto.NoteDTO{
		Id:        note.Id,
		SessionId: note.SessionId,
		UserId:    note.UserId,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
