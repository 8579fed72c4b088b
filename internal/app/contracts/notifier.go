package contracts

import (
	"context"
	"docai-portal/internal/pkg/dto/responses"
)

const (
	NotificationLevelError   = "error"
	NotificationLevelSuccess = "success"
)

// Notifier is how the portal tells the user something happened, the toast of
// a browser front-end.
type Notifier interface {
	Error(ctx context.Context, message string)
	Success(ctx context.Context, message string)
}

// NotificationFeed hands pending notifications to the presentation layer.
type NotificationFeed interface {
	Drain(ctx context.Context) ([]responses.Notification, error)
}
