package patients

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/navigation"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/app/services/shared/events"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientService contracts.PatientService
	ReportService  contracts.ReportService
	ReportCache    contracts.ReportCache
	EventPublisher contracts.EventPublisher
	Notifier       contracts.Notifier
	Log            *zap.Logger
}

// NewPatientUsecase wires the patient pages. reportCache and eventPublisher
// may be nil.
func NewPatientUsecase(
	patientService contracts.PatientService,
	reportService contracts.ReportService,
	reportCache contracts.ReportCache,
	eventPublisher contracts.EventPublisher,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientService: patientService,
		ReportService:  reportService,
		ReportCache:    reportCache,
		EventPublisher: eventPublisher,
		Notifier:       notifier,
		Log:            logger,
	}
}

func (uc *patientUsecase) Dashboard(ctx context.Context) (*responses.PatientDashboardPage, error) {
	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	user, dashboard, err := uc.PatientService.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = store.User()
	}

	page := &responses.PatientDashboardPage{
		User: user,
		Menu: navigation.MenuFor(models.RolePatient, 0),
	}
	if dashboard != nil {
		page.Dashboard = *dashboard
	}
	return page, nil
}

func (uc *patientUsecase) UploadReport(ctx context.Context, request *requests.UploadReport) (map[string]interface{}, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.UploadReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.ReportName == "" || request.ReportType == "" || request.ReportDate == "" || request.File == nil {
		return nil, uc.reject(ctx, constvars.ErrClientUploadFieldsRequired)
	}
	if !isPDF(request.FileName, request.ContentType) {
		return nil, uc.reject(ctx, constvars.ErrClientInvalidReportFile)
	}
	if request.ContentType == "" {
		request.ContentType = constvars.MIMEApplicationPDF
	}
	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		uc.Notifier.Error(ctx, customErr.ClientMessage)
		return nil, customErr
	}

	result, err := uc.ReportService.Upload(ctx, request)
	if err != nil {
		return nil, err
	}
	uc.Notifier.Success(ctx, constvars.ReportUploadedSuccess)

	events.Emit(ctx, uc.EventPublisher, uc.Log, events.New(constvars.EventReportUploaded, uc.actor(ctx), map[string]string{
		"reportId":   uploadedReportID(result),
		"reportName": request.ReportName,
		"reportType": request.ReportType,
	}))

	uc.Log.Info("patientUsecase.UploadReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result, nil
}

func (uc *patientUsecase) History(ctx context.Context, query *requests.ReportHistoryQuery) (*responses.ReportListPage, error) {
	reports, pagination, err := uc.ReportService.History(ctx, query)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return &responses.ReportListPage{Reports: reports, Pagination: pagination}, nil
}

// Report loads one report. Doctors are listed only while a review can still
// be requested.
func (uc *patientUsecase) Report(ctx context.Context, reportID string) (*responses.ReportDetailPage, error) {
	report, err := uc.ReportService.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	page := &responses.ReportDetailPage{
		Report:           *report,
		CanRequestReview: canRequestReview(report),
	}
	if page.CanRequestReview {
		doctors, err := uc.PatientService.Doctors(ctx)
		if err != nil {
			return nil, err
		}
		page.Doctors = doctors
	}
	return page, nil
}

func (uc *patientUsecase) Doctors(ctx context.Context) (*responses.DoctorListPage, error) {
	doctors, err := uc.PatientService.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.DoctorSummary{}
	}
	return &responses.DoctorListPage{Doctors: doctors}, nil
}

func (uc *patientUsecase) RequestReview(ctx context.Context, reportID string, request *requests.RequestReview) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.RequestReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	request.DoctorID = strings.TrimSpace(request.DoctorID)
	if request.DoctorID == "" {
		return uc.reject(ctx, constvars.ErrClientSelectDoctor)
	}

	if err := uc.ReportService.RequestReview(ctx, reportID, request); err != nil {
		return err
	}
	uc.Notifier.Success(ctx, constvars.ReviewRequestedSuccess)

	events.Emit(ctx, uc.EventPublisher, uc.Log, events.New(constvars.EventReviewRequested, uc.actor(ctx), map[string]string{
		"reportId": reportID,
		"doctorId": request.DoctorID,
	}))

	uc.Log.Info("patientUsecase.RequestReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return nil
}

// DownloadReport serves the caller's cached copy when there is one and caches
// what it fetches. Without a logged in user the cache is bypassed. Cache
// failures only cost a backend round trip.
func (uc *patientUsecase) DownloadReport(ctx context.Context, reportID string) (*models.ReportFile, error) {
	requestID := utils.RequestIDFromContext(ctx)

	ownerID := ""
	if owner := uc.actor(ctx); owner != nil {
		ownerID = owner.ID
	}
	useCache := uc.ReportCache != nil && ownerID != ""

	if useCache {
		file, hit, err := uc.ReportCache.Get(ctx, ownerID, reportID)
		if err != nil {
			uc.Log.Warn("patientUsecase.DownloadReport cache read failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReportIDKey, reportID),
				zap.Error(err),
			)
		} else if hit {
			return file, nil
		}
	}

	file, err := uc.ReportService.Download(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := uc.ReportCache.Put(ctx, ownerID, reportID, file); err != nil {
			uc.Log.Warn("patientUsecase.DownloadReport cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReportIDKey, reportID),
				zap.Error(err),
			)
		}
	}
	return file, nil
}

func (uc *patientUsecase) CompareReports(ctx context.Context, request *requests.CompareReports) (*models.Comparison, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.CompareReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.ReportID1 == "" || request.ReportID2 == "" {
		return nil, uc.reject(ctx, constvars.ErrClientSelectTwoReports)
	}
	if request.ReportID1 == request.ReportID2 {
		return nil, uc.reject(ctx, constvars.ErrClientSameReportCompared)
	}

	comparison, err := uc.ReportService.Compare(ctx, request)
	if err != nil {
		return nil, err
	}
	uc.Notifier.Success(ctx, constvars.ComparisonSuccess)

	uc.Log.Info("patientUsecase.CompareReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return comparison, nil
}

func (uc *patientUsecase) reject(ctx context.Context, message string) error {
	uc.Notifier.Error(ctx, message)
	return exceptions.ErrClientCustomMessage(message)
}

func (uc *patientUsecase) actor(ctx context.Context) *models.User {
	if store, ok := session.FromContext(ctx); ok {
		return store.User()
	}
	return nil
}

func canRequestReview(report *models.Report) bool {
	if report.DoctorReview == nil {
		return true
	}
	return report.DoctorReview.Status.CanRequestReview()
}

func isPDF(fileName, contentType string) bool {
	if contentType != "" && !strings.HasPrefix(contentType, constvars.MIMEOctetStream) {
		return strings.HasPrefix(contentType, constvars.MIMEApplicationPDF)
	}
	return strings.EqualFold(filepath.Ext(fileName), ".pdf")
}

// uploadedReportID digs the new report's id out of the upload response,
// which carries it either at the top level or under data.
func uploadedReportID(result map[string]interface{}) string {
	if id, ok := result["_id"].(string); ok {
		return id
	}
	if data, ok := result["data"].(map[string]interface{}); ok {
		if id, ok := data["_id"].(string); ok {
			return id
		}
		if report, ok := data["report"].(map[string]interface{}); ok {
			if id, ok := report["_id"].(string); ok {
				return id
			}
		}
	}
	return ""
}
