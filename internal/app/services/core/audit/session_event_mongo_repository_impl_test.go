package audit

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const sessionEventsNamespace = "portal.session_events"

func TestSessionEventMongoRepository_Record(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mt.Run("inserts the event", func(mt *mtest.T) {
		repo := NewSessionEventMongoRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Record(ctx, &models.SessionEvent{
			ID:              "e1",
			PortalSessionID: "sid-1",
			UserID:          "u1",
			Role:            models.RolePatient,
			Kind:            models.SessionEventLogin,
			At:              at,
		})

		require.NoError(mt, err)
		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
		assert.Equal(mt, constvars.MongoCollectionSessionEvents, started.Command.Lookup("insert").StringValue())
		doc := started.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, "u1", doc.Lookup("userId").StringValue())
		assert.Equal(mt, "login", doc.Lookup("kind").StringValue())
		assert.Equal(mt, "sid-1", doc.Lookup("portalSessionId").StringValue())
	})

	mt.Run("write errors are wrapped", func(mt *mtest.T) {
		repo := NewSessionEventMongoRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Record(ctx, &models.SessionEvent{ID: "e1", UserID: "u1", Kind: models.SessionEventLogout, At: at})

		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestSessionEventMongoRepository_ListByUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	newer := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mt.Run("newest first with a limit", func(mt *mtest.T) {
		repo := NewSessionEventMongoRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, sessionEventsNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "e2"}, {Key: "userId", Value: "u1"}, {Key: "role", Value: "patient"}, {Key: "kind", Value: "logout"}, {Key: "at", Value: primitive.NewDateTimeFromTime(newer)}},
			bson.D{{Key: "_id", Value: "e1"}, {Key: "userId", Value: "u1"}, {Key: "role", Value: "patient"}, {Key: "kind", Value: "login"}, {Key: "at", Value: primitive.NewDateTimeFromTime(older)}},
		))

		events, err := repo.ListByUser(ctx, "u1", 20)

		require.NoError(mt, err)
		require.Len(mt, events, 2)
		assert.Equal(mt, "e2", events[0].ID)
		assert.Equal(mt, models.SessionEventLogout, events[0].Kind)
		assert.Equal(mt, models.RolePatient, events[0].Role)
		assert.True(mt, newer.Equal(events[0].At))

		command := mt.GetStartedEvent().Command
		assert.Equal(mt, "u1", command.Lookup("filter", "userId").StringValue())
		assert.Equal(mt, int64(-1), command.Lookup("sort", "at").AsInt64())
		assert.Equal(mt, int64(20), command.Lookup("limit").AsInt64())
	})

	mt.Run("no limit and no events", func(mt *mtest.T) {
		repo := NewSessionEventMongoRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, sessionEventsNamespace, mtest.FirstBatch))

		events, err := repo.ListByUser(ctx, "u2", 0)

		require.NoError(mt, err)
		assert.NotNil(mt, events)
		assert.Empty(mt, events)
		_, err = mt.GetStartedEvent().Command.LookupErr("limit")
		assert.Error(mt, err)
	})

	mt.Run("command errors are wrapped", func(mt *mtest.T) {
		repo := NewSessionEventMongoRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad filter"}))

		_, err := repo.ListByUser(ctx, "u1", 5)

		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}
