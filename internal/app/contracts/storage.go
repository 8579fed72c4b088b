package contracts

import (
	"context"
	"docai-portal/internal/app/models"
)

// DurableStorage is the key-value store that outlives a single page view:
// Redis scoped by portal session on the server, a file for the CLI.
// Get returns "" with a nil error when the key is absent.
type DurableStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ReportCache keeps downloaded report files so repeated downloads skip the
// backend. Entries belong to the user who downloaded them.
type ReportCache interface {
	Get(ctx context.Context, ownerID, reportID string) (*models.ReportFile, bool, error)
	Put(ctx context.Context, ownerID, reportID string, file *models.ReportFile) error
}
