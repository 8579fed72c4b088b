package accounts

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"errors"

	"go.uber.org/zap"
)

type accountUsecase struct {
	AuthService   contracts.AuthService
	SessionEvents contracts.SessionEventRecorder
	Notifier      contracts.Notifier
	Log           *zap.Logger
}

func NewAccountUsecase(
	authService contracts.AuthService,
	sessionEvents contracts.SessionEventRecorder,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.AccountUsecase {
	return &accountUsecase{
		AuthService:   authService,
		SessionEvents: sessionEvents,
		Notifier:      notifier,
		Log:           logger,
	}
}

func (uc *accountUsecase) Login(ctx context.Context, role models.Role, request *requests.Login) (*models.User, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("accountUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)

	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	if request.Email == "" || request.Password == "" {
		uc.Notifier.Error(ctx, constvars.ErrClientFillAllFields)
		return nil, exceptions.ErrClientCustomMessage(constvars.ErrClientFillAllFields)
	}
	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		uc.Notifier.Error(ctx, customErr.ClientMessage)
		return nil, customErr
	}

	user, err := store.Login(ctx, request.Email, request.Password, role)
	if err != nil {
		uc.notifyPortalError(ctx, err)
		return nil, err
	}

	if role == models.RoleAdmin {
		uc.Notifier.Success(ctx, constvars.AdminLoginSuccess)
	} else {
		uc.Notifier.Success(ctx, constvars.LoginSuccess)
	}

	uc.Log.Info("accountUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *accountUsecase) Register(ctx context.Context, form *requests.RegisterForm) (*models.User, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("accountUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(form); err != nil {
		uc.Notifier.Error(ctx, constvars.ErrClientFixFormErrors)
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := store.Register(ctx, form)
	if err != nil {
		uc.notifyPortalError(ctx, err)
		return nil, err
	}
	uc.Notifier.Success(ctx, constvars.RegisterSuccess)

	uc.Log.Info("accountUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

// Logout forgets the session and points at the login page of the role that
// was logged in.
func (uc *accountUsecase) Logout(ctx context.Context) (*responses.SessionView, error) {
	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	redirectTo := constvars.PathRoot
	if user := store.User(); user != nil {
		redirectTo = guard.LoginPath(user.Role)
	}
	if err := store.Logout(ctx); err != nil {
		return nil, err
	}

	uc.Log.Info("accountUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRedirectToKey, redirectTo),
	)
	return &responses.SessionView{Authenticated: false, RedirectTo: redirectTo}, nil
}

func (uc *accountUsecase) Session(ctx context.Context) (*responses.SessionView, error) {
	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	user := store.User()
	view := &responses.SessionView{Authenticated: user != nil, User: user}
	if user != nil {
		view.RedirectTo = guard.DashboardPath(user.Role)
	}
	return view, nil
}

// SessionActivity lists the recent session events of the logged-in user,
// newest first. Portals running without an audit trail answer with an
// empty list.
func (uc *accountUsecase) SessionActivity(ctx context.Context) (*responses.SessionActivityPage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("accountUsecase.SessionActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}
	user := store.User()
	if user == nil {
		return nil, exceptions.ErrNotAuthenticated()
	}

	page := &responses.SessionActivityPage{User: user, Events: []models.SessionEvent{}}
	if uc.SessionEvents == nil {
		return page, nil
	}

	events, err := uc.SessionEvents.ListByUser(ctx, user.ID, constvars.SessionActivityLimit)
	if err != nil {
		return nil, err
	}
	page.Events = events

	uc.Log.Info("accountUsecase.SessionActivity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.Int("count", len(events)),
	)
	return page, nil
}

// UpdateProfile saves the profile on the backend and mirrors the result into
// the session. When the backend answers without a user the submitted fields
// are applied to the current one.
func (uc *accountUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.User, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("accountUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	store, err := session.Current(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := uc.AuthService.UpdateProfile(ctx, request)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = store.User()
		if updated == nil {
			return nil, exceptions.ErrNotAuthenticated()
		}
		updated.FullName = request.FullName
		updated.Phone = request.Phone
		updated.Address = request.Address
		if request.Gender != "" {
			updated.Gender = request.Gender
		}
		if request.Age != nil {
			updated.Age = request.Age
		}
	}

	if err := store.UpdateUser(ctx, updated); err != nil {
		return nil, err
	}
	uc.Notifier.Success(ctx, constvars.ProfileUpdatedSuccess)

	uc.Log.Info("accountUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, updated.ID),
	)
	return store.User(), nil
}

func (uc *accountUsecase) ChangePassword(ctx context.Context, form *requests.ChangePasswordForm) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("accountUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if form.NewPassword != form.ConfirmPassword {
		uc.Notifier.Error(ctx, constvars.ErrClientPasswordsDoNotMatch)
		return exceptions.ErrClientCustomMessage(constvars.ErrClientPasswordsDoNotMatch)
	}

	err := uc.AuthService.ChangePassword(ctx, &requests.ChangePassword{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		return err
	}
	uc.Notifier.Success(ctx, constvars.PasswordChangedSuccess)

	uc.Log.Info("accountUsecase.ChangePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// notifyPortalError shows errors raised by the portal itself. Backend
// failures were already shown by the API client.
func (uc *accountUsecase) notifyPortalError(ctx context.Context, err error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		uc.Notifier.Error(ctx, customErr.ClientMessage)
	}
}
