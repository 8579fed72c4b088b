package middlewares

import (
	"context"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/app/services/shared/durable"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PortalSession gives every browser its own session store. The browser is
// identified by the portal session cookie, which is issued on first visit;
// the store is rebuilt from that browser's durable storage on each request.
func (m *Middlewares) PortalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		portalSessionID := m.portalSessionID(w, r)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PORTAL_SESSION_ID_KEY, portalSessionID)
		storage := m.StorageFactory(portalSessionID)
		ctx = durable.WithStorage(ctx, storage)

		opts := []session.Option{session.WithPortalSessionID(portalSessionID)}
		if m.SessionRecorder != nil {
			opts = append(opts, session.WithRecorder(m.SessionRecorder))
		}
		store := session.NewStore(storage, m.AuthService, m.Log, opts...)

		if err := store.Rehydrate(ctx); err != nil {
			m.Log.Error("Middlewares.PortalSession rehydrate failed",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.String(constvars.LoggingPortalSessionIDKey, portalSessionID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, r.WithContext(ctx), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithStore(ctx, store)))
	})
}

func (m *Middlewares) portalSessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(constvars.PortalSessionCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	portalSessionID := utils.GeneratePortalSessionID()
	maxAge := time.Duration(m.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.PortalSessionCookieName,
		Value:    portalSessionID,
		Path:     constvars.PathRoot,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.InternalConfig.App.SessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return portalSessionID
}
