package routers

import (
	"docai-portal/internal/app/delivery/http/middlewares"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, authLimiter func(http.Handler) http.Handler, handlers *Controllers) {
	router.Get("/", redirectTo(constvars.PathPatientLogin))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.GuestOnly)
		r.Get("/login", handlers.Auth.GuestPage)
		r.Get("/register", handlers.Auth.GuestPage)
		r.With(authLimiter).Post("/login", handlers.Auth.Login(models.RolePatient))
		r.With(authLimiter).Post("/register", handlers.Auth.Register)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(models.RolePatient))
		r.Get("/dashboard", handlers.Patient.Dashboard)
		r.Post("/upload", handlers.Patient.UploadReport)
		r.Get("/history", handlers.Patient.History)
		r.Get("/reports/{reportID}", handlers.Patient.Report)
		r.Get("/reports/{reportID}/download", handlers.Patient.DownloadReport)
		r.Post("/reports/{reportID}/review", handlers.Patient.RequestReview)
		r.Get("/doctors", handlers.Patient.Doctors)
		r.Post("/comparison", handlers.Patient.CompareReports)
		r.Get("/profile", handlers.Auth.Session)
		r.Put("/profile", handlers.Auth.UpdateProfile)
		r.Put("/profile/password", handlers.Auth.ChangePassword)
	})
}
