package contracts

import (
	"context"
	"docai-portal/internal/app/models"
)

// SessionEventRecorder keeps an audit trail of session lifecycle changes.
type SessionEventRecorder interface {
	Record(ctx context.Context, event *models.SessionEvent) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.SessionEvent, error)
}
