package contracts

import (
	"context"
	"docai-portal/internal/app/models"
)

type PatientService interface {
	Dashboard(ctx context.Context) (*models.User, *models.PatientDashboard, error)
	Doctors(ctx context.Context) ([]models.DoctorSummary, error)
}
