package audit

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type sessionEventMongoRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewSessionEventMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.SessionEventRecorder {
	return &sessionEventMongoRepository{
		collection: db.Collection(constvars.MongoCollectionSessionEvents),
		log:        logger,
	}
}

func (r *sessionEventMongoRepository) Record(ctx context.Context, event *models.SessionEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	r.log.Info("sessionEventMongoRepository.Record called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKindKey, string(event.Kind)),
	)

	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		r.log.Error("sessionEventMongoRepository.Record error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err, constvars.MongoCollectionSessionEvents)
	}
	return nil
}

// ListByUser returns the newest events first.
func (r *sessionEventMongoRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.SessionEvent, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.log.Info("sessionEventMongoRepository.ListByUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	findOptions := options.Find().SetSort(bson.D{{Key: "at", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionSessionEvents)
	}
	defer cursor.Close(ctx)

	events := []models.SessionEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionSessionEvents)
	}
	return events, nil
}
