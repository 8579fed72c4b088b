package apiclient

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BearerToken reads the token from durable storage on every request so that
// a login or logout is visible to the very next call.
func BearerToken(storage contracts.DurableStorage) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if storage == nil {
				return next.Do(req)
			}
			token, err := storage.Get(req.Context(), constvars.StorageKeyToken)
			if err == nil && token != "" {
				req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
			}
			return next.Do(req)
		})
	}
}

// RateLimit spaces outgoing calls to at most perSecond requests per second.
func RateLimit(perSecond int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}
			return next.Do(req)
		})
	}
}

// ErrorHandling is the single place where failed backend calls are turned
// into user notifications and typed errors. Successful responses pass
// through untouched.
func ErrorHandling(storage contracts.DurableStorage, notifier contracts.Notifier, log *zap.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			ctx := req.Context()
			resp, err := next.Do(req)
			if err != nil {
				notify(notifier, func(n contracts.Notifier) { n.Error(ctx, constvars.NotifyNetworkError) })
				log.Warn("apiclient network error",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
					zap.String(constvars.LoggingEndpointKey, req.URL.Path),
					zap.Error(err),
				)
				return nil, &exceptions.BackendError{
					Kind:    exceptions.KindNetwork,
					Method:  req.Method,
					Path:    req.URL.Path,
					Message: constvars.NotifyNetworkError,
					Err:     err,
				}
			}
			if resp.StatusCode < http.StatusBadRequest {
				return resp, nil
			}

			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			var body responses.BackendError
			decoded := json.Unmarshal(raw, &body) == nil

			backendErr := &exceptions.BackendError{
				Method:     req.Method,
				Path:       req.URL.Path,
				StatusCode: resp.StatusCode,
			}

			switch {
			case resp.StatusCode == http.StatusUnauthorized:
				backendErr.Kind = exceptions.KindUnauthorized
				backendErr.Message = body.Message
				if backendErr.Message == "" {
					backendErr.Message = http.StatusText(http.StatusUnauthorized)
				}
				clearSession(ctx, storage, log)
				if !utils.IsPublicAuthPath(utils.CurrentPathFromContext(ctx)) {
					backendErr.RedirectTo = constvars.PathRoot
				}

			case resp.StatusCode == http.StatusUnprocessableEntity && decoded && body.Errors != nil:
				backendErr.Kind = exceptions.KindValidation
				for _, fieldErr := range body.Errors {
					text := fieldErr.Msg
					if text == "" {
						text = fieldErr.Message
					}
					backendErr.FieldErrors = append(backendErr.FieldErrors, text)
				}
				backendErr.Message = strings.Join(backendErr.FieldErrors, ", ")
				if backendErr.Message == "" {
					backendErr.Message = constvars.NotifyValidationError
				}
				notify(notifier, func(n contracts.Notifier) { n.Error(ctx, backendErr.Message) })

			default:
				backendErr.Kind = exceptions.KindServer
				backendErr.Message = body.Message
				if backendErr.Message == "" {
					backendErr.Message = statusMessage(resp.StatusCode)
				}
				notify(notifier, func(n contracts.Notifier) { n.Error(ctx, backendErr.Message) })
			}

			return nil, backendErr
		})
	}
}

// clearSession removes both durable keys. Removing an absent key is fine.
func clearSession(ctx context.Context, storage contracts.DurableStorage, log *zap.Logger) {
	if storage == nil {
		return
	}
	for _, key := range []string{constvars.StorageKeyToken, constvars.StorageKeyUser} {
		if err := storage.Remove(ctx, key); err != nil {
			log.Warn("apiclient failed to clear durable key",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

func notify(notifier contracts.Notifier, send func(contracts.Notifier)) {
	if notifier != nil {
		send(notifier)
	}
}

func statusMessage(statusCode int) string {
	if statusCode <= 0 {
		return constvars.NotifyGenericError
	}
	return fmt.Sprintf(constvars.NotifyStatusFormat, statusCode)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
