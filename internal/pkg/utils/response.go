package utils

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// appEnv decides whether error responses carry the developer message.
// It is set once from the loaded config at startup.
var appEnv = "development"

func SetAppEnv(env string) {
	if env != "" {
		appEnv = env
	}
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	writeJSON(w, code, response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *models.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	writeJSON(w, code, response)
}

// Redirect is the portal's single way of moving the user to another page.
// Guards and session invalidation both end up here.
func Redirect(w http.ResponseWriter, r *http.Request, target, message string) {
	w.Header().Set(constvars.HeaderLocation, target)
	writeJSON(w, constvars.StatusSeeOther, responses.RedirectDTO{
		Success:    false,
		Message:    message,
		RedirectTo: target,
	})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}

	if backendErr, ok := exceptions.AsBackendError(err); ok {
		log.Warn("backend call failed",
			zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingEndpointKey, backendErr.Path),
			zap.Int(constvars.LoggingStatusCodeKey, backendErr.StatusCode),
			zap.String(constvars.LoggingRedirectToKey, backendErr.RedirectTo),
			zap.Error(err),
		)
		if backendErr.RedirectTo != "" {
			Redirect(w, r, backendErr.RedirectTo, constvars.ErrClientNotLoggedIn)
			return
		}
		writeJSON(w, backendStatusCode(backendErr), exceptions.CustomError{
			StatusCode:    backendErr.StatusCode,
			Success:       false,
			ClientMessage: backendErr.Message,
		})
		return
	}

	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(r.Context())),
			zap.Any("location", location),
		)
	} else {
		log.Error(err.Error(), zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(r.Context())))
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil && appEnv != "production" {
		response.DevMessage = customErr.DevMessage
	}
	writeJSON(w, code, response)
}

// backendStatusCode maps a backend failure onto the portal's own status.
// Network failures become 502 because the portal itself is healthy.
func backendStatusCode(backendErr *exceptions.BackendError) int {
	if backendErr.StatusCode == 0 {
		return constvars.StatusBadGateway
	}
	return backendErr.StatusCode
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
