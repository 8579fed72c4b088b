package contracts

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
)

type DoctorService interface {
	Dashboard(ctx context.Context) (*models.User, *models.DoctorDashboard, error)
	PendingReviewCount(ctx context.Context) (int, error)
	ReviewRequests(ctx context.Context, query *requests.ListQuery) ([]models.Report, *models.Pagination, error)
	SubmitReview(ctx context.Context, reportID string, request *requests.SubmitReview) error
	Patients(ctx context.Context, query *requests.ListQuery) ([]models.PatientSummary, *models.Pagination, error)
	PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error)
}
