package service

import (
	"context"
	"encoding/json"
	"fmt"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

// publishActivity hands an audit entry to the in-process pipeline. Auditing
// must never fail the request, so errors only warn.
func publishActivity(ctx context.Context, publisher IPublisherService, userId uuid.UUID, action entity.ActivityAction, metadata map[string]interface{}) {
	if publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.PublishActivityMessage{
		UserId:   userId,
		Action:   string(action),
		Metadata: metadata,
	})
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal activity payload: %v\n", err)
		return
	}
	if err := publisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish activity %s: %v\n", action, err)
	}
}
