package controllers

import (
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AccountUsecase contracts.AccountUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, accountUsecase contracts.AccountUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AccountUsecase: accountUsecase,
		InternalConfig: internalConfig,
	}
}

// Session describes who is logged in; it backs the landing page and the
// profile and settings pages.
func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.AccountUsecase.Session(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, view)
}

func (ctrl *AuthController) SessionActivity(w http.ResponseWriter, r *http.Request) {
	page, err := ctrl.AccountUsecase.SessionActivity(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionActivitySuccess, page)
}

// GuestPage answers for the login and register pages once the guest guard
// let the request through.
func (ctrl *AuthController) GuestPage(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, responses.SessionView{Authenticated: false})
}

func (ctrl *AuthController) Login(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Bind body to request
		request := new(requests.Login)
		err := json.NewDecoder(r.Body).Decode(request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
			return
		}
		utils.SanitizeLoginRequest(request)

		ctx, cancel := backendContext(r, ctrl.InternalConfig)
		defer cancel()

		user, err := ctrl.AccountUsecase.Login(ctx, role, request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, r, err)
			return
		}

		message := constvars.LoginSuccess
		if role == models.RoleAdmin {
			message = constvars.AdminLoginSuccess
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, message, responses.SessionView{
			Authenticated: true,
			User:          user,
			RedirectTo:    guard.DashboardPath(user.Role),
		})
	}
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.RegisterForm)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterForm(request)

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	user, err := ctrl.AccountUsecase.Register(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, responses.SessionView{
		Authenticated: true,
		User:          user,
		RedirectTo:    guard.DashboardPath(user.Role),
	})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.AccountUsecase.Logout(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, view)
}

func (ctrl *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateProfileRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	user, err := ctrl.AccountUsecase.UpdateProfile(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, user)
}

func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ChangePasswordForm)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.AccountUsecase.ChangePassword(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordChangedSuccess, nil)
}
