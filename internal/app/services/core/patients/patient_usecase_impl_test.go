package patients

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/app/services/shared/durable"
	"docai-portal/internal/app/services/shared/notifier"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Dashboard(ctx context.Context) (*models.User, *models.PatientDashboard, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*models.User)
	dashboard, _ := args.Get(1).(*models.PatientDashboard)
	return user, dashboard, args.Error(2)
}

func (m *MockPatientService) Doctors(ctx context.Context) ([]models.DoctorSummary, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.DoctorSummary)
	return doctors, args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Upload(ctx context.Context, request *requests.UploadReport) (map[string]interface{}, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *MockReportService) History(ctx context.Context, query *requests.ReportHistoryQuery) ([]models.Report, *models.Pagination, error) {
	args := m.Called(ctx, query)
	reports, _ := args.Get(0).([]models.Report)
	pagination, _ := args.Get(1).(*models.Pagination)
	return reports, pagination, args.Error(2)
}

func (m *MockReportService) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	args := m.Called(ctx, reportID)
	report, _ := args.Get(0).(*models.Report)
	return report, args.Error(1)
}

func (m *MockReportService) Download(ctx context.Context, reportID string) (*models.ReportFile, error) {
	args := m.Called(ctx, reportID)
	file, _ := args.Get(0).(*models.ReportFile)
	return file, args.Error(1)
}

func (m *MockReportService) RequestReview(ctx context.Context, reportID string, request *requests.RequestReview) error {
	return m.Called(ctx, reportID, request).Error(0)
}

func (m *MockReportService) Compare(ctx context.Context, request *requests.CompareReports) (*models.Comparison, error) {
	args := m.Called(ctx, request)
	comparison, _ := args.Get(0).(*models.Comparison)
	return comparison, args.Error(1)
}

type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, ownerID, reportID string) (*models.ReportFile, bool, error) {
	args := m.Called(ctx, ownerID, reportID)
	file, _ := args.Get(0).(*models.ReportFile)
	return file, args.Bool(1), args.Error(2)
}

func (m *MockReportCache) Put(ctx context.Context, ownerID, reportID string, file *models.ReportFile) error {
	return m.Called(ctx, ownerID, reportID, file).Error(0)
}

// memoryReportCache behaves like the object store, keyed by owner and report.
type memoryReportCache struct {
	files map[string]*models.ReportFile
}

func newMemoryReportCache() *memoryReportCache {
	return &memoryReportCache{files: map[string]*models.ReportFile{}}
}

func (c *memoryReportCache) Get(ctx context.Context, ownerID, reportID string) (*models.ReportFile, bool, error) {
	file, ok := c.files[ownerID+"/"+reportID]
	return file, ok, nil
}

func (c *memoryReportCache) Put(ctx context.Context, ownerID, reportID string, file *models.ReportFile) error {
	c.files[ownerID+"/"+reportID] = file
	return nil
}

// patientContext carries a rehydrated session for the given patient.
func patientContext(t *testing.T, patientID string) context.Context {
	t.Helper()
	storage := durable.NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, constvars.StorageKeyToken, "tok-"+patientID))
	require.NoError(t, storage.Set(ctx, constvars.StorageKeyUser, `{"id":"`+patientID+`","fullName":"P","email":"p@example.com","role":"patient"}`))
	store := session.NewStore(storage, nil, zap.NewNop())
	require.NoError(t, store.Rehydrate(ctx))
	require.True(t, store.IsAuthenticated())
	return session.WithStore(ctx, store)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *requests.PortalEvent) error {
	return m.Called(ctx, event).Error(0)
}

type fixture struct {
	patients  *MockPatientService
	reports   *MockReportService
	cache     *MockReportCache
	publisher *MockEventPublisher
	recorder  *notifier.Recorder
}

func newUsecase() (*patientUsecase, *fixture) {
	f := &fixture{
		patients:  new(MockPatientService),
		reports:   new(MockReportService),
		cache:     new(MockReportCache),
		publisher: new(MockEventPublisher),
		recorder:  notifier.NewRecorder(),
	}
	uc := NewPatientUsecase(f.patients, f.reports, f.cache, f.publisher, f.recorder, zap.NewNop()).(*patientUsecase)
	return uc, f
}

func TestUploadReport_MissingFields(t *testing.T) {
	uc, f := newUsecase()

	_, err := uc.UploadReport(context.Background(), &requests.UploadReport{ReportName: "CBC"})

	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientUploadFieldsRequired, f.recorder.Messages()[0].Message)
	f.reports.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadReport_RejectsNonPDF(t *testing.T) {
	uc, f := newUsecase()

	_, err := uc.UploadReport(context.Background(), &requests.UploadReport{
		ReportName:  "CBC",
		ReportType:  "blood",
		ReportDate:  "2024-05-01",
		FileName:    "scan.png",
		ContentType: "image/png",
		File:        strings.NewReader("png"),
	})

	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientInvalidReportFile, f.recorder.Messages()[0].Message)
}

func TestUploadReport_PublishesEvent(t *testing.T) {
	uc, f := newUsecase()
	f.reports.On("Upload", mock.Anything, mock.Anything).
		Return(map[string]interface{}{"success": true, "data": map[string]interface{}{"_id": "r1"}}, nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *requests.PortalEvent) bool {
		return e.Kind == constvars.EventReportUploaded && e.Attributes["reportId"] == "r1"
	})).Return(nil)

	result, err := uc.UploadReport(context.Background(), &requests.UploadReport{
		ReportName: "CBC",
		ReportType: "blood",
		ReportDate: "2024-05-01",
		FileName:   "cbc.PDF",
		File:       strings.NewReader("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, constvars.ReportUploadedSuccess, f.recorder.Messages()[0].Message)
	f.publisher.AssertExpectations(t)
}

func TestReport_ListsDoctorsOnlyWhenReviewable(t *testing.T) {
	uc, f := newUsecase()
	f.reports.On("FindByID", mock.Anything, "r1").Return(&models.Report{ID: "r1"}, nil)
	f.reports.On("FindByID", mock.Anything, "r2").Return(&models.Report{
		ID:           "r2",
		DoctorReview: &models.DoctorReview{Status: models.ReviewStatusReviewed},
	}, nil)
	f.patients.On("Doctors", mock.Anything).Return([]models.DoctorSummary{{ID: "d1"}}, nil).Once()

	open, err := uc.Report(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, open.CanRequestReview)
	assert.Len(t, open.Doctors, 1)

	reviewed, err := uc.Report(context.Background(), "r2")
	require.NoError(t, err)
	assert.False(t, reviewed.CanRequestReview)
	assert.Empty(t, reviewed.Doctors)
	f.patients.AssertExpectations(t)
}

func TestRequestReview_RequiresDoctor(t *testing.T) {
	uc, f := newUsecase()

	err := uc.RequestReview(context.Background(), "r1", &requests.RequestReview{DoctorID: " "})

	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientSelectDoctor, f.recorder.Messages()[0].Message)
}

func TestRequestReview_BrokerFailureDoesNotFailRequest(t *testing.T) {
	uc, f := newUsecase()
	f.reports.On("RequestReview", mock.Anything, "r1", mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := uc.RequestReview(context.Background(), "r1", &requests.RequestReview{DoctorID: "d1"})

	require.NoError(t, err)
	assert.Equal(t, constvars.ReviewRequestedSuccess, f.recorder.Messages()[0].Message)
}

func TestDownloadReport_CacheHit(t *testing.T) {
	uc, f := newUsecase()
	cached := &models.ReportFile{FileName: "cbc.pdf", Content: []byte("%PDF")}
	f.cache.On("Get", mock.Anything, "p1", "r1").Return(cached, true, nil)

	file, err := uc.DownloadReport(patientContext(t, "p1"), "r1")

	require.NoError(t, err)
	assert.Equal(t, cached, file)
	f.reports.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestDownloadReport_CacheIsPerUser(t *testing.T) {
	cache := newMemoryReportCache()
	reports := new(MockReportService)
	uc := NewPatientUsecase(new(MockPatientService), reports, cache, nil, notifier.NewRecorder(), zap.NewNop())

	owned := &models.ReportFile{FileName: "cbc.pdf", Content: []byte("owner-only")}
	ownerCtx := patientContext(t, "p1")
	reports.On("Download", ownerCtx, "r1").Return(owned, nil).Once()

	file, err := uc.DownloadReport(ownerCtx, "r1")
	require.NoError(t, err)
	assert.Equal(t, owned, file)

	otherCtx := patientContext(t, "p2")
	forbidden := errors.New("forbidden")
	reports.On("Download", otherCtx, "r1").Return(nil, forbidden).Once()

	file, err = uc.DownloadReport(otherCtx, "r1")
	assert.ErrorIs(t, err, forbidden)
	assert.Nil(t, file)
	reports.AssertExpectations(t)
}

func TestDownloadReport_NoSessionSkipsCache(t *testing.T) {
	uc, f := newUsecase()
	fetched := &models.ReportFile{FileName: "cbc.pdf", Content: []byte("%PDF")}
	f.reports.On("Download", mock.Anything, "r1").Return(fetched, nil)

	file, err := uc.DownloadReport(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, fetched, file)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadReport_MissFetchesAndCaches(t *testing.T) {
	uc, f := newUsecase()
	fetched := &models.ReportFile{FileName: "cbc.pdf", Content: []byte("%PDF")}
	f.cache.On("Get", mock.Anything, "p1", "r1").Return(nil, false, errors.New("minio down"))
	f.reports.On("Download", mock.Anything, "r1").Return(fetched, nil)
	f.cache.On("Put", mock.Anything, "p1", "r1", fetched).Return(nil)

	file, err := uc.DownloadReport(patientContext(t, "p1"), "r1")

	require.NoError(t, err)
	assert.Equal(t, fetched, file)
	f.cache.AssertExpectations(t)
}

func TestCompareReports_Validation(t *testing.T) {
	uc, f := newUsecase()

	_, err := uc.CompareReports(context.Background(), &requests.CompareReports{ReportID1: "r1"})
	require.Error(t, err)

	_, err = uc.CompareReports(context.Background(), &requests.CompareReports{ReportID1: "r1", ReportID2: "r1"})
	require.Error(t, err)

	messages := f.recorder.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, constvars.ErrClientSelectTwoReports, messages[0].Message)
	assert.Equal(t, constvars.ErrClientSameReportCompared, messages[1].Message)
	f.reports.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestCompareReports_Success(t *testing.T) {
	uc, f := newUsecase()
	f.reports.On("Compare", mock.Anything, mock.Anything).Return(&models.Comparison{Summary: "stable"}, nil)

	comparison, err := uc.CompareReports(context.Background(), &requests.CompareReports{ReportID1: "r1", ReportID2: "r2"})

	require.NoError(t, err)
	assert.Equal(t, "stable", comparison.Summary)
	assert.Equal(t, constvars.ComparisonSuccess, f.recorder.Messages()[0].Message)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF("a.pdf", ""))
	assert.True(t, isPDF("a.bin", "application/pdf"))
	assert.True(t, isPDF("a.pdf", "application/octet-stream"))
	assert.False(t, isPDF("a.pdf", "image/png"))
	assert.False(t, isPDF("a.txt", ""))
}
