package middlewares

import (
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireRole renders the page only for users of role.
func (m *Middlewares) RequireRole(role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, ok := session.FromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrNoSessionInContext())
				return
			}
			m.apply(w, r, next, guard.Protected(store.GuardState(), role))
		})
	}
}

// GuestOnly renders the page only when nobody is logged in.
func (m *Middlewares) GuestOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store, ok := session.FromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, r, exceptions.ErrNoSessionInContext())
			return
		}
		m.apply(w, r, next, guard.GuestOnly(store.GuardState()))
	})
}

func (m *Middlewares) apply(w http.ResponseWriter, r *http.Request, next http.Handler, decision guard.Decision) {
	switch decision.Outcome {
	case guard.Loading:
		utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ErrClientLoading, nil)
	case guard.Redirect:
		m.Log.Info("Middlewares.guard redirect",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRedirectToKey, decision.Target),
		)
		utils.Redirect(w, r, decision.Target, "")
	default:
		next.ServeHTTP(w, r)
	}
}
