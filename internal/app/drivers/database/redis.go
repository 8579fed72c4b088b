package database

import (
	"context"
	"docai-portal/internal/app/config"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(driverConfig *config.DriverConfig, lifecycle *logrus.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		lifecycle.Fatalf("Could not connect to Redis: %v", err)
	}
	lifecycle.Info("Successfully connected to redis")

	return rdb
}
