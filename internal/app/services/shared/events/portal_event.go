package events

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a portal event attributed to the acting user.
func New(kind string, actor *models.User, attributes map[string]string) *requests.PortalEvent {
	event := &requests.PortalEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Attributes: attributes,
		OccurredAt: time.Now().UTC(),
	}
	if actor != nil {
		event.UserID = actor.ID
		event.Role = actor.Role.String()
	}
	return event
}

// Emit publishes the event and only logs a failure. A nil publisher drops
// the event.
func Emit(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, event *requests.PortalEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("portal event dropped",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventKindKey, event.Kind),
			zap.Error(err),
		)
	}
}
