package routers

import (
	"docai-portal/internal/app/delivery/http/middlewares"
	"docai-portal/internal/app/models"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, authLimiter func(http.Handler) http.Handler, handlers *Controllers) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.GuestOnly)
		r.Get("/login", handlers.Auth.GuestPage)
		r.With(authLimiter).Post("/login", handlers.Auth.Login(models.RoleAdmin))
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(models.RoleAdmin))
		r.Get("/dashboard", handlers.Admin.Dashboard)
		r.Get("/doctors", handlers.Admin.Doctors)
		r.Post("/doctors", handlers.Admin.AddDoctor)
		r.Delete("/doctors/{doctorID}", handlers.Admin.DeleteDoctor)
		r.Get("/doctors/{doctorID}/activity", handlers.Admin.DoctorActivity)
		r.Get("/patients", handlers.Admin.Patients)
		r.Get("/patients/{patientID}/history", handlers.Admin.PatientHistory)
		r.Get("/settings", handlers.Auth.Session)
		r.Put("/settings/profile", handlers.Auth.UpdateProfile)
		r.Put("/settings/password", handlers.Auth.ChangePassword)
	})
}
