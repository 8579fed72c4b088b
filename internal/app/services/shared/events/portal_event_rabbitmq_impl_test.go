package events

import (
	"context"
	"docai-portal/internal/pkg/dto/requests"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	event := &requests.PortalEvent{
		ID:         "evt-1",
		Kind:       "review.requested",
		UserID:     "p1",
		Role:       "patient",
		Attributes: map[string]string{"reportId": "r1", "doctorId": "d1"},
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("persistent json message on the queue", func(t *testing.T) {
		channel := new(MockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", ctx, "", "docai.portal.events", false, false, mock.Anything).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		err := NewPublisher(channel, "docai.portal.events", zap.NewNop()).Publish(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, "review.requested", published.Type)
		var decoded requests.PortalEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "r1", decoded.Attributes["reportId"])
	})

	t.Run("broker failure is wrapped", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", ctx, "", "q", false, false, mock.Anything).Return(errors.New("channel closed"))

		err := NewPublisher(channel, "q", zap.NewNop()).Publish(ctx, event)

		assert.Error(t, err)
	})
}
