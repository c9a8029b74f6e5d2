package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityLogRepo struct {
	mu      sync.Mutex
	created []*entity.ActivityLog
}

func (r *fakeActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, log)
	return nil
}
func (r *fakeActivityLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ActivityLog(nil), r.created...), nil
}
func (r *fakeActivityLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.created)), nil
}

func (r *fakeActivityLogRepo) waitForCount(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		n := len(r.created)
		r.mu.Unlock()
		if n >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d activity rows", want)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestActivityPipeline(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	activityRepo := &fakeActivityLogRepo{}
	uow := &fakeUow{activity: activityRepo}

	consumer := NewConsumerService(pubSub, "USER_ACTIVITY", &fakeUowFactory{uow: uow}, nopLogger{})
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("USER_ACTIVITY", pubSub)

	userId := uuid.New()
	payload, err := json.Marshal(dto.PublishActivityMessage{
		UserId: userId,
		Action: string(entity.ActivityNoteCreate),
		Metadata: map[string]interface{}{
			"note_id": "abc",
		},
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	activityRepo.waitForCount(t, 1)

	entry := activityRepo.created[0]
	assert.Equal(t, userId, entry.UserId)
	assert.Equal(t, entity.ActivityNoteCreate, entry.Action)
	assert.Equal(t, "abc", entry.Metadata["note_id"])
}

func TestActivityPipelineSkipsInvalidPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	activityRepo := &fakeActivityLogRepo{}
	uow := &fakeUow{activity: activityRepo}

	consumer := NewConsumerService(pubSub, "USER_ACTIVITY", &fakeUowFactory{uow: uow}, nopLogger{})
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("USER_ACTIVITY", pubSub)
	require.NoError(t, publisher.Publish(context.Background(), []byte("{not json")))

	// Then publish a valid one; the invalid message must not wedge the stream
	payload, err := json.Marshal(dto.PublishActivityMessage{
		UserId: uuid.New(),
		Action: string(entity.ActivityUserLogin),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	activityRepo.waitForCount(t, 1)
	assert.Equal(t, entity.ActivityUserLogin, activityRepo.created[0].Action)
}
