package apiclient

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"fmt"
	"net/http"
	"net/url"
)

type adminService struct {
	client *Client
}

func NewAdminService(client *Client) contracts.AdminService {
	return &adminService{client: client}
}

func (s *adminService) Dashboard(ctx context.Context) (models.AdminDashboard, error) {
	var envelope responses.DataMapEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathAdminDashboard, nil, nil, &envelope)
	if err != nil {
		return nil, err
	}
	return models.AdminDashboard(envelope.Data), nil
}

func (s *adminService) Doctors(ctx context.Context, query *requests.ListQuery) ([]models.DoctorSummary, *models.Pagination, error) {
	var envelope responses.DoctorListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathAdminDoctors, listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.List(), envelope.Pagination, nil
}

func (s *adminService) AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.DoctorSummary, error) {
	var envelope responses.DoctorEnvelope
	err := s.client.do(ctx, http.MethodPost, constvars.BackendPathAdminDoctors, nil, request, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Doctor(), nil
}

func (s *adminService) DeleteDoctor(ctx context.Context, doctorID string) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf(constvars.BackendPathAdminDoctorFormat, url.PathEscape(doctorID)), nil, nil, nil)
}

func (s *adminService) DoctorActivity(ctx context.Context, doctorID string, query *requests.ListQuery) (models.DoctorActivity, *models.Pagination, error) {
	var envelope responses.DataMapEnvelope
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf(constvars.BackendPathAdminDoctorActivity, url.PathEscape(doctorID)), listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return models.DoctorActivity(envelope.Data), envelope.Pagination, nil
}

func (s *adminService) Patients(ctx context.Context, query *requests.ListQuery) ([]models.PatientSummary, *models.Pagination, error) {
	var envelope responses.PatientListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathAdminPatients, listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.Data, envelope.Pagination, nil
}

func (s *adminService) PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error) {
	var envelope responses.PatientHistoryEnvelope
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf(constvars.BackendPathAdminPatientHistory, url.PathEscape(patientID)), listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return &envelope.Data, envelope.Pagination, nil
}
