package middlewares

import (
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"

	"go.uber.org/zap"
)

// StorageFactory opens the durable storage of one portal session.
type StorageFactory func(portalSessionID string) contracts.DurableStorage

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	AuthService     contracts.AuthService
	SessionRecorder contracts.SessionEventRecorder
	StorageFactory  StorageFactory
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	authService contracts.AuthService,
	sessionRecorder contracts.SessionEventRecorder,
	storageFactory StorageFactory,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		AuthService:     authService,
		SessionRecorder: sessionRecorder,
		StorageFactory:  storageFactory,
	}
}
