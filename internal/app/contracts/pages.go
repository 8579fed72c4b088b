package contracts

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
)

// AccountUsecase drives the pages every role shares: login, registration,
// logout and account settings.
type AccountUsecase interface {
	Login(ctx context.Context, role models.Role, request *requests.Login) (*models.User, error)
	Register(ctx context.Context, form *requests.RegisterForm) (*models.User, error)
	Logout(ctx context.Context) (*responses.SessionView, error)
	Session(ctx context.Context) (*responses.SessionView, error)
	SessionActivity(ctx context.Context) (*responses.SessionActivityPage, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.User, error)
	ChangePassword(ctx context.Context, form *requests.ChangePasswordForm) error
}

type PatientUsecase interface {
	Dashboard(ctx context.Context) (*responses.PatientDashboardPage, error)
	UploadReport(ctx context.Context, request *requests.UploadReport) (map[string]interface{}, error)
	History(ctx context.Context, query *requests.ReportHistoryQuery) (*responses.ReportListPage, error)
	Report(ctx context.Context, reportID string) (*responses.ReportDetailPage, error)
	Doctors(ctx context.Context) (*responses.DoctorListPage, error)
	RequestReview(ctx context.Context, reportID string, request *requests.RequestReview) error
	DownloadReport(ctx context.Context, reportID string) (*models.ReportFile, error)
	CompareReports(ctx context.Context, request *requests.CompareReports) (*models.Comparison, error)
}

type DoctorUsecase interface {
	Dashboard(ctx context.Context) (*responses.DoctorDashboardPage, error)
	PendingReviewCount(ctx context.Context) (int, error)
	ReviewRequests(ctx context.Context, query *requests.ListQuery) (*responses.ReportListPage, error)
	ReviewRequest(ctx context.Context, reportID string) (*models.Report, error)
	SubmitReview(ctx context.Context, reportID string, request *requests.SubmitReview) error
	Patients(ctx context.Context, query *requests.ListQuery) (*responses.PatientListPage, error)
	PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error)
}

type AdminUsecase interface {
	Dashboard(ctx context.Context) (*responses.AdminDashboardPage, error)
	Doctors(ctx context.Context, query *requests.ListQuery) (*responses.DoctorListPage, error)
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.DoctorSummary, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	DoctorActivity(ctx context.Context, doctorID string, query *requests.ListQuery) (models.DoctorActivity, *models.Pagination, error)
	Patients(ctx context.Context, query *requests.ListQuery) (*responses.PatientListPage, error)
	PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error)
}
