package routers

import (
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/delivery/http/controllers"
	"docai-portal/internal/app/delivery/http/middlewares"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// Controllers groups every handler the portal router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Patient      *controllers.PatientController
	Doctor       *controllers.DoctorController
	Admin        *controllers.AdminController
	Notification *controllers.NotificationController
	Health       *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	lifecycle *logrus.Logger,
	middlewares *middlewares.Middlewares,
	handlers *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if internalConfig.App.Env != "production" && lifecycle != nil {
		router.Use(middlewares.RequestLogger(lifecycle))
	}
	router.Use(middlewares.ErrorHandler)

	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = []string{internalConfig.App.FrontendDomain}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	normalLimiter, authLimiter := middlewares.CreateRateLimiters()
	router.Use(normalLimiter)
	router.Use(middlewares.BodyLimit)

	router.Get(constvars.PathHealthz, handlers.Health.Healthz)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, r, exceptions.ErrPageNotFound())
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.PortalSession)
		r.Use(middlewares.CurrentPath)

		r.Get(constvars.PathRoot, handlers.Auth.Session)
		r.Get(constvars.PathNotificationsAPI, handlers.Notification.Drain)
		r.Get(constvars.PathSessionActivity, handlers.Auth.SessionActivity)
		r.Post("/logout", handlers.Auth.Logout)

		r.Route("/patient", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, authLimiter, handlers)
		})
		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, authLimiter, handlers)
		})
		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, authLimiter, handlers)
		})
	})
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.Redirect(w, r, target, "")
	}
}
