package doctors

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
	"strings"

	"go.uber.org/zap"
)

// reviewLookupLimit is how many review requests are scanned to find one by
// id; the backend has no single-request endpoint.
const reviewLookupLimit = 100

type doctorUsecase struct {
	DoctorService  contracts.DoctorService
	EventPublisher contracts.EventPublisher
	Notifier       contracts.Notifier
	Log            *zap.Logger
}

func NewDoctorUsecase(
	doctorService contracts.DoctorService,
	eventPublisher contracts.EventPublisher,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorService:  doctorService,
		EventPublisher: eventPublisher,
		Notifier:       notifier,
		Log:            logger,
	}
}

func (uc *doctorUsecase) Dashboard(ctx context.Context) (*responses.DoctorDashboardPage, error) {
	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	user, dashboard, err := uc.DoctorService.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = store.User()
	}

	page := &responses.DoctorDashboardPage{
		User: user,
		Menu: navigation.MenuFor(models.RoleDoctor, uc.pendingBadge(ctx)),
	}
	if dashboard != nil {
		page.Dashboard = *dashboard
	}
	return page, nil
}

func (uc *doctorUsecase) PendingReviewCount(ctx context.Context) (int, error) {
	return uc.DoctorService.PendingReviewCount(ctx)
}

func (uc *doctorUsecase) ReviewRequests(ctx context.Context, query *requests.ListQuery) (*responses.ReportListPage, error) {
	reports, pagination, err := uc.DoctorService.ReviewRequests(ctx, query)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return &responses.ReportListPage{Reports: reports, Pagination: pagination}, nil
}

func (uc *doctorUsecase) ReviewRequest(ctx context.Context, reportID string) (*models.Report, error) {
	reports, _, err := uc.DoctorService.ReviewRequests(ctx, &requests.ListQuery{Page: 1, Limit: reviewLookupLimit})
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == reportID {
			return &reports[i], nil
		}
	}

	uc.Notifier.Error(ctx, constvars.ErrClientReviewRequestNotFound)
	return nil, exceptions.ErrReviewRequestNotFound(reportID)
}

func (uc *doctorUsecase) SubmitReview(ctx context.Context, reportID string, request *requests.SubmitReview) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.SubmitReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	request.Notes = strings.TrimSpace(request.Notes)
	if request.Notes == "" {
		uc.Notifier.Error(ctx, constvars.ErrClientReviewNotesRequired)
		return exceptions.ErrClientCustomMessage(constvars.ErrClientReviewNotesRequired)
	}

	if err := uc.DoctorService.SubmitReview(ctx, reportID, request); err != nil {
		return err
	}
	uc.Notifier.Success(ctx, constvars.ReviewSubmittedSuccess)

	var actor *models.User
	if store, ok := session.FromContext(ctx); ok {
		actor = store.User()
	}
	events.Emit(ctx, uc.EventPublisher, uc.Log, events.New(constvars.EventReviewSubmitted, actor, map[string]string{
		"reportId": reportID,
	}))

	uc.Log.Info("doctorUsecase.SubmitReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return nil
}

func (uc *doctorUsecase) Patients(ctx context.Context, query *requests.ListQuery) (*responses.PatientListPage, error) {
	patients, pagination, err := uc.DoctorService.Patients(ctx, query)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.PatientSummary{}
	}
	return &responses.PatientListPage{Patients: patients, Pagination: pagination}, nil
}

func (uc *doctorUsecase) PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error) {
	uc.Log.Info("doctorUsecase.PatientHistory called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return uc.DoctorService.PatientHistory(ctx, patientID, query)
}

// pendingBadge never fails the page; a missing badge is shown as none.
func (uc *doctorUsecase) pendingBadge(ctx context.Context) int {
	count, err := uc.DoctorService.PendingReviewCount(ctx)
	if err != nil {
		uc.Log.Warn("doctorUsecase.pendingBadge failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return 0
	}
	return count
}
