package durable

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type redisStorage struct {
	redisRepo       contracts.RedisRepository
	portalSessionID string
	ttl             time.Duration
	log             *zap.Logger
}

// NewRedisStorage scopes the durable keys to one browser, identified by its
// portal session cookie. Every write refreshes the TTL.
func NewRedisStorage(redisRepo contracts.RedisRepository, portalSessionID string, ttl time.Duration, logger *zap.Logger) contracts.DurableStorage {
	return &redisStorage{
		redisRepo:       redisRepo,
		portalSessionID: portalSessionID,
		ttl:             ttl,
		log:             logger,
	}
}

func (s *redisStorage) key(name string) string {
	return fmt.Sprintf(constvars.PortalSessionRedisFormat, s.portalSessionID, name)
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, error) {
	return s.redisRepo.Get(ctx, s.key(key))
}

func (s *redisStorage) Set(ctx context.Context, key, value string) error {
	err := s.redisRepo.Set(ctx, s.key(key), value, s.ttl)
	if err != nil {
		s.log.Error("redisStorage.Set error",
			zap.String(constvars.LoggingPortalSessionIDKey, s.portalSessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *redisStorage) Remove(ctx context.Context, key string) error {
	err := s.redisRepo.Delete(ctx, s.key(key))
	if err != nil {
		s.log.Error("redisStorage.Remove error",
			zap.String(constvars.LoggingPortalSessionIDKey, s.portalSessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
