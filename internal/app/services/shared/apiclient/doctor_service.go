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

type doctorService struct {
	client *Client
}

func NewDoctorService(client *Client) contracts.DoctorService {
	return &doctorService{client: client}
}

func (s *doctorService) Dashboard(ctx context.Context) (*models.User, *models.DoctorDashboard, error) {
	var envelope responses.DoctorDashboardEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathDoctorDashboard, nil, nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.User, &envelope.Dashboard, nil
}

func (s *doctorService) PendingReviewCount(ctx context.Context) (int, error) {
	var envelope responses.CountEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathReviewRequestsCount, nil, nil, &envelope)
	if err != nil {
		return 0, err
	}
	return envelope.Count, nil
}

func (s *doctorService) ReviewRequests(ctx context.Context, query *requests.ListQuery) ([]models.Report, *models.Pagination, error) {
	var envelope responses.ReportListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathReviewRequests, listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.Data, envelope.Pagination, nil
}

func (s *doctorService) SubmitReview(ctx context.Context, reportID string, request *requests.SubmitReview) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf(constvars.BackendPathReviewSubmitFormat, url.PathEscape(reportID)), nil, request, nil)
}

func (s *doctorService) Patients(ctx context.Context, query *requests.ListQuery) ([]models.PatientSummary, *models.Pagination, error) {
	var envelope responses.PatientListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathDoctorPatients, listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.Data, envelope.Pagination, nil
}

func (s *doctorService) PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error) {
	var envelope responses.PatientHistoryEnvelope
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf(constvars.BackendPathDoctorPatientHistory, url.PathEscape(patientID)), listValues(query), nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return &envelope.Data, envelope.Pagination, nil
}

func listValues(query *requests.ListQuery) url.Values {
	if query == nil {
		return nil
	}
	values := pageQuery(query.Page, query.Limit)
	setIfPresent(values, "search", query.Search)
	setIfPresent(values, "reportType", query.ReportType)
	return values
}
