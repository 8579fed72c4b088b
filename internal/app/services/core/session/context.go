package session

import (
	"context"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
)

func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_STORE_KEY, store)
}

func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(constvars.CONTEXT_SESSION_STORE_KEY).(*Store)
	return store, ok && store != nil
}

// Current is FromContext for callers that cannot run without a store.
func Current(ctx context.Context) (*Store, error) {
	store, ok := FromContext(ctx)
	if !ok {
		return nil, exceptions.ErrNoSessionInContext()
	}
	return store, nil
}
