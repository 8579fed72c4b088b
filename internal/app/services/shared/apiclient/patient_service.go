package apiclient

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/responses"
	"net/http"
)

type patientService struct {
	client *Client
}

func NewPatientService(client *Client) contracts.PatientService {
	return &patientService{client: client}
}

func (s *patientService) Dashboard(ctx context.Context) (*models.User, *models.PatientDashboard, error) {
	var envelope responses.PatientDashboardEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathPatientDashboard, nil, nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.User, &envelope.Dashboard, nil
}

func (s *patientService) Doctors(ctx context.Context) ([]models.DoctorSummary, error) {
	var envelope responses.DoctorListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathPatientDoctors, nil, nil, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.List(), nil
}
