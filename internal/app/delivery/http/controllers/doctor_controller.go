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

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.DoctorUsecase.Dashboard(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, page)
}

func (ctrl *DoctorController) PendingReviewCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	count, err := ctrl.DoctorUsecase.PendingReviewCount(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, map[string]int{"count": count})
}

func (ctrl *DoctorController) ReviewRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.DoctorUsecase.ReviewRequests(ctx, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, page.Pagination, page.Reports)
}

func (ctrl *DoctorController) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	report, err := ctrl.DoctorUsecase.ReviewRequest(ctx, chi.URLParam(r, "reportID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, report)
}

func (ctrl *DoctorController) SubmitReview(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SubmitReview)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSubmitReviewRequest(request)

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.DoctorUsecase.SubmitReview(ctx, chi.URLParam(r, "reportID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewSubmittedSuccess, nil)
}

func (ctrl *DoctorController) Patients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.DoctorUsecase.Patients(ctx, utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, page.Pagination, page.Patients)
}

func (ctrl *DoctorController) PatientHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	history, pagination, err := ctrl.DoctorUsecase.PatientHistory(ctx, chi.URLParam(r, "patientID"), utils.BuildListQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, pagination, history)
}
