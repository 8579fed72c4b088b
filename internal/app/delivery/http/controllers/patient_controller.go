package controllers

import (
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const multipartMemoryLimit = 32 << 20

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.PatientUsecase.Dashboard(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, page)
}

func (ctrl *PatientController) UploadReport(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadReport{
		ReportName: r.FormValue(constvars.BackendMultipartFieldReportName),
		ReportType: r.FormValue(constvars.BackendMultipartFieldReportType),
		ReportDate: r.FormValue(constvars.BackendMultipartFieldReportDate),
	}
	file, header, err := r.FormFile(constvars.BackendMultipartFieldReport)
	switch {
	case err == nil:
		defer file.Close()
		request.File = file
		request.FileName = header.Filename
		request.ContentType = header.Header.Get(constvars.HeaderContentType)
	case !errors.Is(err, http.ErrMissingFile):
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	utils.SanitizeUploadReportRequest(request)

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PatientUsecase.UploadReport(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReportUploadedSuccess, result)
}

func (ctrl *PatientController) History(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.PatientUsecase.History(ctx, utils.BuildReportHistoryQuery(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PageGetSuccess, page.Pagination, page.Reports)
}

func (ctrl *PatientController) Report(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.PatientUsecase.Report(ctx, chi.URLParam(r, "reportID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, page)
}

func (ctrl *PatientController) Doctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	page, err := ctrl.PatientUsecase.Doctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PageGetSuccess, page)
}

func (ctrl *PatientController) RequestReview(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.RequestReview)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.PatientUsecase.RequestReview(ctx, chi.URLParam(r, "reportID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewRequestedSuccess, nil)
}

func (ctrl *PatientController) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	file, err := ctrl.PatientUsecase.DownloadReport(ctx, chi.URLParam(r, "reportID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(file.Content)))
	w.WriteHeader(constvars.StatusOK)
	w.Write(file.Content)
}

func (ctrl *PatientController) CompareReports(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CompareReports)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCompareReportsRequest(request)

	ctx, cancel := backendContext(r, ctrl.InternalConfig)
	defer cancel()

	comparison, err := ctrl.PatientUsecase.CompareReports(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComparisonSuccess, comparison)
}
