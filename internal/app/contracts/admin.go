package contracts

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
)

type AdminService interface {
	Dashboard(ctx context.Context) (models.AdminDashboard, error)
	Doctors(ctx context.Context, query *requests.ListQuery) ([]models.DoctorSummary, *models.Pagination, error)
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.DoctorSummary, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	DoctorActivity(ctx context.Context, doctorID string, query *requests.ListQuery) (models.DoctorActivity, *models.Pagination, error)
	Patients(ctx context.Context, query *requests.ListQuery) ([]models.PatientSummary, *models.Pagination, error)
	PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error)
}
