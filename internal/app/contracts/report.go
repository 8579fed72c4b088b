package contracts

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
)

type ReportService interface {
	Upload(ctx context.Context, request *requests.UploadReport) (map[string]interface{}, error)
	History(ctx context.Context, query *requests.ReportHistoryQuery) ([]models.Report, *models.Pagination, error)
	FindByID(ctx context.Context, reportID string) (*models.Report, error)
	Download(ctx context.Context, reportID string) (*models.ReportFile, error)
	RequestReview(ctx context.Context, reportID string, request *requests.RequestReview) error
	Compare(ctx context.Context, request *requests.CompareReports) (*models.Comparison, error)
}
