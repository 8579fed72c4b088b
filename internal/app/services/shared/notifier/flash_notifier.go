package notifier

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type flashNotifier struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	log       *zap.Logger
}

// FlashNotifier queues notifications per portal session in Redis until the
// presentation layer drains them.
type FlashNotifier interface {
	contracts.Notifier
	contracts.NotificationFeed
}

func NewFlashNotifier(redisRepo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) FlashNotifier {
	return &flashNotifier{
		redisRepo: redisRepo,
		ttl:       ttl,
		log:       logger,
	}
}

func (n *flashNotifier) Error(ctx context.Context, message string) {
	n.push(ctx, contracts.NotificationLevelError, message)
}

func (n *flashNotifier) Success(ctx context.Context, message string) {
	n.push(ctx, contracts.NotificationLevelSuccess, message)
}

func (n *flashNotifier) push(ctx context.Context, level, message string) {
	sessionID := utils.PortalSessionIDFromContext(ctx)
	if sessionID == "" {
		n.log.Warn("flashNotifier.push without portal session",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String("message", message),
		)
		return
	}

	payload, err := json.Marshal(responses.Notification{Level: level, Message: message})
	if err != nil {
		n.log.Error("flashNotifier.push marshal error", zap.Error(err))
		return
	}

	key := fmt.Sprintf(constvars.PortalFlashRedisFormat, sessionID)
	if err := n.redisRepo.PushToList(ctx, key, string(payload)); err != nil {
		n.log.Error("flashNotifier.push error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingPortalSessionIDKey, sessionID),
			zap.Error(err),
		)
		return
	}
	if err := n.redisRepo.Expire(ctx, key, n.ttl); err != nil {
		n.log.Warn("flashNotifier.push expire error", zap.Error(err))
	}
}

func (n *flashNotifier) Drain(ctx context.Context) ([]responses.Notification, error) {
	sessionID := utils.PortalSessionIDFromContext(ctx)
	notifications := []responses.Notification{}
	if sessionID == "" {
		return notifications, nil
	}

	entries, err := n.redisRepo.PopAllFromList(ctx, fmt.Sprintf(constvars.PortalFlashRedisFormat, sessionID))
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		var notification responses.Notification
		if err := json.Unmarshal([]byte(entry), &notification); err != nil {
			n.log.Warn("flashNotifier.Drain skipped malformed entry", zap.Error(err))
			continue
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}
