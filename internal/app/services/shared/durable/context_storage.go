package durable

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
)

type contextStorage struct {
	fallback contracts.DurableStorage
}

// NewContextStorage resolves the storage of the current request from ctx.
// The process-wide API client holds this so that each browser's token is
// read from its own scope. Without a scoped storage in ctx the fallback
// is used.
func NewContextStorage(fallback contracts.DurableStorage) contracts.DurableStorage {
	return &contextStorage{fallback: fallback}
}

// WithStorage attaches a request-scoped storage to ctx.
func WithStorage(ctx context.Context, storage contracts.DurableStorage) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_DURABLE_STORAGE_KEY, storage)
}

func (s *contextStorage) resolve(ctx context.Context) contracts.DurableStorage {
	if storage, ok := ctx.Value(constvars.CONTEXT_DURABLE_STORAGE_KEY).(contracts.DurableStorage); ok && storage != nil {
		return storage
	}
	return s.fallback
}

func (s *contextStorage) Get(ctx context.Context, key string) (string, error) {
	return s.resolve(ctx).Get(ctx, key)
}

func (s *contextStorage) Set(ctx context.Context, key, value string) error {
	return s.resolve(ctx).Set(ctx, key, value)
}

func (s *contextStorage) Remove(ctx context.Context, key string) error {
	return s.resolve(ctx).Remove(ctx, key)
}
