package controllers

import (
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	InternalConfig *config.InternalConfig
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase, internalConfig *config.InternalConfig) *AdminController {
	return &AdminController{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.AdminUsecase.Dashboard(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, page)
}

func (ctrl *AdminController) Doctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.AdminUsecase.Doctors(ctx, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, page.Pagination, page.Doctors)
}

func (ctrl *AdminController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.AddDoctor)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeAddDoctorRequest(request)

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	doctor, err := ctrl.AdminUsecase.AddDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorAddedSuccess, doctor)
}

func (ctrl *AdminController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	err := ctrl.AdminUsecase.DeleteDoctor(ctx, chi.URLParam(r, "doctorID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}

func (ctrl *AdminController) DoctorActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	activity, pagination, err := ctrl.AdminUsecase.DoctorActivity(ctx, chi.URLParam(r, "doctorID"), utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, pagination, activity)
}

func (ctrl *AdminController) Patients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.AdminUsecase.Patients(ctx, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, page.Pagination, page.Patients)
}

func (ctrl *AdminController) PatientHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	history, pagination, err := ctrl.AdminUsecase.PatientHistory(ctx, chi.URLParam(r, "patientID"), utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, pagination, history)
}
