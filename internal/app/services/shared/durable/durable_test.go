package durable

import (
	"context"
	"os"
	"path/filepath"
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
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key, value string, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	args := m.Called(ctx, key, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
}

func (m *MockRedisRepository) PopAllFromList(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]string), args.Error(1)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	value, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, storage.Set(ctx, "token", "tok1"))
	value, _ = storage.Get(ctx, "token")
	assert.Equal(t, "tok1", value)

	require.NoError(t, storage.Remove(ctx, "token"))
	require.NoError(t, storage.Remove(ctx, "token"))
	value, _ = storage.Get(ctx, "token")
	assert.Empty(t, value)
}

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRedisRepository)
	storage := NewRedisStorage(repo, "sid-1", 24*time.Hour, zap.NewNop())

	repo.On("Set", ctx, "portal:session:sid-1:token", "tok1", 24*time.Hour).Return(nil)
	repo.On("Get", ctx, "portal:session:sid-1:token").Return("tok1", nil)
	repo.On("Delete", ctx, []string{"portal:session:sid-1:user"}).Return(nil)

	require.NoError(t, storage.Set(ctx, "token", "tok1"))
	value, err := storage.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "tok1", value)
	require.NoError(t, storage.Remove(ctx, "user"))

	repo.AssertExpectations(t)
}

func TestFileStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "docai", "session.json")

	t.Run("missing file reads as empty", func(t *testing.T) {
		value, err := NewFileStorage(path).Get(ctx, "user")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("values survive a new instance", func(t *testing.T) {
		require.NoError(t, NewFileStorage(path).Set(ctx, "token", "tok1"))

		value, err := NewFileStorage(path).Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "tok1", value)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("corrupt file reads as empty", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		value, err := NewFileStorage(path).Get(ctx, "token")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestContextStorage(t *testing.T) {
	fallback := NewMemoryStorage()
	scoped := NewMemoryStorage()
	storage := NewContextStorage(fallback)

	ctx := WithStorage(context.Background(), scoped)
	require.NoError(t, storage.Set(ctx, "token", "scoped"))
	require.NoError(t, storage.Set(context.Background(), "token", "global"))

	value, _ := scoped.Get(context.Background(), "token")
	assert.Equal(t, "scoped", value)
	value, _ = fallback.Get(context.Background(), "token")
	assert.Equal(t, "global", value)
}
