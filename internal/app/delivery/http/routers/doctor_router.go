package routers

import (
	"docai-portal/internal/app/delivery/http/middlewares"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, authLimiter func(http.Handler) http.Handler, handlers *Controllers) {
	router.Get("/", redirectTo(constvars.PathDoctorLogin))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.GuestOnly)
		r.Get("/login", handlers.Auth.GuestPage)
		r.With(authLimiter).Post("/login", handlers.Auth.Login(models.RoleDoctor))
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(models.RoleDoctor))
		r.Get("/dashboard", handlers.Doctor.Dashboard)
		r.Get("/review-requests", handlers.Doctor.ReviewRequests)
		r.Get("/review-requests/count", handlers.Doctor.PendingReviewCount)
		r.Get("/review-requests/{reportID}", handlers.Doctor.ReviewRequest)
		r.Post("/review-requests/{reportID}/submit", handlers.Doctor.SubmitReview)
		r.Get("/patients", handlers.Doctor.Patients)
		r.Get("/patients/{patientID}/history", handlers.Doctor.PatientHistory)
	})
}
