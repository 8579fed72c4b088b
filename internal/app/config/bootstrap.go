package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Logger         *zap.Logger
	Lifecycle      *logrus.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Redis.Close()
	if err != nil {
		return err
	}
	b.Lifecycle.Info("Successfully closing Redis")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	b.Lifecycle.Info("Successfully closing MongoDB")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	b.Lifecycle.Info("Successfully closing RabbitMQ")

	// Sync on stdout returns EINVAL on some platforms; it is not fatal.
	if err = b.Logger.Sync(); err != nil {
		b.Lifecycle.WithError(err).Warn("Failed to flush zap logger")
	}
	b.Lifecycle.Info("Successfully closing Logger")

	return nil
}
