package controllers

import (
	"context"
	"docai-portal/internal/app/config"
	"net/http"
	"time"
)

// backendContext bounds the backend calls made for one request while
// keeping the request's session in the context.
func backendContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.BackendRequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}
