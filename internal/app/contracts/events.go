package contracts

import (
	"context"
	"docai-portal/internal/pkg/dto/requests"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *requests.PortalEvent) error
}
