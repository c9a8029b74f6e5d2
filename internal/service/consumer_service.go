package service

import (
	"context"
	"encoding/json"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/pkg/logger"
	"video-notetaking-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and persists audit rows off the
// request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishActivityMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.ActivityLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Action:    entity.ActivityAction(payload.Action),
		Metadata:  payload.Metadata,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityLogRepository().Create(ctx, entry); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist activity log", map[string]interface{}{
			"action": payload.Action,
			"error":  err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.logger.Debug("ConsumerService", "Persisted activity log", map[string]interface{}{
		"action":  payload.Action,
		"user_id": payload.UserId,
	})
	msg.Ack()
}
