package service

import (
	"context"
	"fmt"
	"time"

	"video-notetaking-be/pkg/events"
	pktNats "video-notetaking-be/pkg/nats"
)

// publishDomainEvent emits a best-effort NATS event for a mutation. The bus
// may be down; that never fails the request.
func publishDomainEvent(ctx context.Context, pub *pktNats.Publisher, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := pub.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}
