package admins

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

	"go.uber.org/zap"
)

type adminUsecase struct {
	AdminService   contracts.AdminService
	EventPublisher contracts.EventPublisher
	Notifier       contracts.Notifier
	Log            *zap.Logger
}

func NewAdminUsecase(
	adminService contracts.AdminService,
	eventPublisher contracts.EventPublisher,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.AdminUsecase {
	return &adminUsecase{
		AdminService:   adminService,
		EventPublisher: eventPublisher,
		Notifier:       notifier,
		Log:            logger,
	}
}

func (uc *adminUsecase) Dashboard(ctx context.Context) (*responses.AdminDashboardPage, error) {
	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	dashboard, err := uc.AdminService.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		dashboard = models.AdminDashboard{}
	}
	return &responses.AdminDashboardPage{
		User:      store.User(),
		Menu:      navigation.MenuFor(models.RoleAdmin, 0),
		Dashboard: dashboard,
	}, nil
}

func (uc *adminUsecase) Doctors(ctx context.Context, query *requests.ListQuery) (*responses.DoctorListPage, error) {
	doctors, pagination, err := uc.AdminService.Doctors(ctx, query)
	if err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.DoctorSummary{}
	}
	return &responses.DoctorListPage{Doctors: doctors, Pagination: pagination}, nil
}

func (uc *adminUsecase) AddDoctor(ctx context.Context, request *requests.AddDoctor) (*models.DoctorSummary, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("adminUsecase.AddDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		uc.Notifier.Error(ctx, customErr.ClientMessage)
		return nil, customErr
	}

	doctor, err := uc.AdminService.AddDoctor(ctx, request)
	if err != nil {
		return nil, err
	}
	uc.Notifier.Success(ctx, constvars.DoctorAddedSuccess)

	attributes := map[string]string{"email": request.Email}
	if doctor != nil {
		attributes["doctorId"] = doctor.ID
	}
	events.Emit(ctx, uc.EventPublisher, uc.Log, events.New(constvars.EventDoctorAdded, uc.actor(ctx), attributes))

	uc.Log.Info("adminUsecase.AddDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return doctor, nil
}

func (uc *adminUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("adminUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := uc.AdminService.DeleteDoctor(ctx, doctorID); err != nil {
		return err
	}
	uc.Notifier.Success(ctx, constvars.DoctorDeletedSuccess)

	uc.Log.Info("adminUsecase.DeleteDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil
}

func (uc *adminUsecase) DoctorActivity(ctx context.Context, doctorID string, query *requests.ListQuery) (models.DoctorActivity, *models.Pagination, error) {
	return uc.AdminService.DoctorActivity(ctx, doctorID, query)
}

func (uc *adminUsecase) Patients(ctx context.Context, query *requests.ListQuery) (*responses.PatientListPage, error) {
	patients, pagination, err := uc.AdminService.Patients(ctx, query)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.PatientSummary{}
	}
	return &responses.PatientListPage{Patients: patients, Pagination: pagination}, nil
}

func (uc *adminUsecase) PatientHistory(ctx context.Context, patientID string, query *requests.ListQuery) (*models.PatientHistory, *models.Pagination, error) {
	return uc.AdminService.PatientHistory(ctx, patientID, query)
}

func (uc *adminUsecase) actor(ctx context.Context) *models.User {
	if store, ok := session.FromContext(ctx); ok {
		return store.User()
	}
	return nil
}
