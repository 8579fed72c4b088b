package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-IP limiter for every page and the
// stricter one for login and registration.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, authLimiter func(next http.Handler) http.Handler) {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
	authLimiter = httprate.LimitByIP(m.InternalConfig.App.LoginMaxRequests, window)
	return normalLimiter, authLimiter
}
