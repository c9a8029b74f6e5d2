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

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionDTO, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.SessionDTO, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.Session{
		Id:        uuid.New(),
		Name:      req.Name,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivitySessionCreate), map[string]interface{}{
		"session_id": session.Id,
		"user_id":    userId,
	})
	publishActivity(ctx, s.publisherService, userId, entity.ActivitySessionCreate, map[string]interface{}{
		"session_id": session.Id,
		"name":       session.Name,
	})

	return toSessionDTO(session), nil
}

func (s *sessionService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, *toSessionDTO(session))
	}
	return result, nil
}

func toSessionDTO(session *entity.Session) *dto.SessionDTO {
	return &dto.SessionDTO{
		Id:        session.Id,
		Name:      session.Name,
		UserId:    session.UserId,
		CreatedAt: session.CreatedAt,
	}
}
