package utils

import (
	"context"
	"docai-portal/internal/pkg/constvars"
)

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func PortalSessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_PORTAL_SESSION_ID_KEY).(string)
	return sessionID
}

// WithCurrentPath records the page the user is on, consulted by the API
// client when the backend rejects the session.
func WithCurrentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_CURRENT_PATH_KEY, path)
}

func CurrentPathFromContext(ctx context.Context) string {
	path, _ := ctx.Value(constvars.CONTEXT_CURRENT_PATH_KEY).(string)
	return path
}

func IsPublicAuthPath(path string) bool {
	for _, publicPath := range constvars.PublicAuthPaths {
		if path == publicPath {
			return true
		}
	}
	return false
}
