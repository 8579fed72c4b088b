package notifier

import (
	"context"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key, value string, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return m.Called(ctx, key, exp).Error(0)
}

func (m *MockRedisRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	return m.Called(ctx, key, values).Error(0)
}

func (m *MockRedisRepository) PopAllFromList(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]string), args.Error(1)
}

func TestFlashNotifier(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_PORTAL_SESSION_ID_KEY, "sid-1")

	t.Run("push queues under the portal session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		flash := NewFlashNotifier(repo, time.Hour, zap.NewNop())
		repo.On("PushToList", ctx, "portal:flash:sid-1", []interface{}{`{"level":"error","message":"Validation error"}`}).Return(nil)
		repo.On("Expire", ctx, "portal:flash:sid-1", time.Hour).Return(nil)

		flash.Error(ctx, "Validation error")

		repo.AssertExpectations(t)
	})

	t.Run("drain decodes queued entries", func(t *testing.T) {
		repo := new(MockRedisRepository)
		flash := NewFlashNotifier(repo, time.Hour, zap.NewNop())
		repo.On("PopAllFromList", ctx, "portal:flash:sid-1").Return([]string{
			`{"level":"success","message":"Login successful!"}`,
			`garbage`,
		}, nil)

		notifications, err := flash.Drain(ctx)
		require.NoError(t, err)
		assert.Equal(t, []responses.Notification{{Level: "success", Message: "Login successful!"}}, notifications)
	})

	t.Run("no portal session is a no-op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		flash := NewFlashNotifier(repo, time.Hour, zap.NewNop())

		flash.Success(context.Background(), "ignored")
		notifications, err := flash.Drain(context.Background())

		require.NoError(t, err)
		assert.Empty(t, notifications)
		repo.AssertNotCalled(t, "PushToList")
	})
}
