package apiclient

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

type reportService struct {
	client *Client
}

func NewReportService(client *Client) contracts.ReportService {
	return &reportService{client: client}
}

// Upload sends the PDF and its metadata. The backend analyses the report
// synchronously and the whole response body is handed back.
func (s *reportService) Upload(ctx context.Context, request *requests.UploadReport) (map[string]interface{}, error) {
	fields := [][2]string{
		{constvars.BackendMultipartFieldReportName, request.ReportName},
		{constvars.BackendMultipartFieldReportType, request.ReportType},
		{constvars.BackendMultipartFieldReportDate, request.ReportDate},
	}

	result := make(map[string]interface{})
	err := s.client.doMultipart(ctx, constvars.BackendPathReportUpload, fields,
		constvars.BackendMultipartFieldReport, request.FileName, request.ContentType, request.File, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *reportService) History(ctx context.Context, query *requests.ReportHistoryQuery) ([]models.Report, *models.Pagination, error) {
	values := pageQuery(query.Page, query.Limit)
	setIfPresent(values, "reportType", query.ReportType)
	setIfPresent(values, "search", query.Search)
	setIfPresent(values, "startDate", query.StartDate)
	setIfPresent(values, "endDate", query.EndDate)

	var envelope responses.ReportListEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathReportHistory, values, nil, &envelope)
	if err != nil {
		return nil, nil, err
	}
	return envelope.Data, envelope.Pagination, nil
}

func (s *reportService) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	var envelope responses.ReportEnvelope
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf(constvars.BackendPathReportFormat, url.PathEscape(reportID)), nil, nil, &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (s *reportService) Download(ctx context.Context, reportID string) (*models.ReportFile, error) {
	content, header, err := s.client.download(ctx, fmt.Sprintf(constvars.BackendPathReportDownloadFormat, url.PathEscape(reportID)))
	if err != nil {
		return nil, err
	}

	file := &models.ReportFile{
		FileName:    reportID + ".pdf",
		ContentType: header.Get(constvars.HeaderContentType),
		Content:     content,
	}
	if file.ContentType == "" {
		file.ContentType = constvars.MIMEApplicationPDF
	}
	if _, params, err := mime.ParseMediaType(header.Get(constvars.HeaderContentDisposition)); err == nil && params["filename"] != "" {
		file.FileName = params["filename"]
	}
	return file, nil
}

func (s *reportService) RequestReview(ctx context.Context, reportID string, request *requests.RequestReview) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf(constvars.BackendPathReportReviewFormat, url.PathEscape(reportID)), nil, request, nil)
}

func (s *reportService) Compare(ctx context.Context, request *requests.CompareReports) (*models.Comparison, error) {
	var envelope responses.ComparisonEnvelope
	err := s.client.do(ctx, http.MethodPost, constvars.BackendPathReportCompare, nil, request, &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope.Data.Comparison, nil
}

func setIfPresent(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
