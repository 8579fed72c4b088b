package constvars

const (
	PathRoot             = "/"
	PathPatientLogin     = "/patient/login"
	PathPatientRegister  = "/patient/register"
	PathDoctorLogin      = "/doctor/login"
	PathAdminLogin       = "/admin/login"
	PathLoginFormat      = "/%s/login"
	PathDashboardFormat  = "/%s/dashboard"
	PathNotificationsAPI = "/notifications"
	PathSessionActivity  = "/sessions"
	PathHealthz          = "/healthz"
)

// PublicAuthPaths are the pages where a 401 from the backend must not
// bounce the user back to the site root.
var PublicAuthPaths = []string{
	PathDoctorLogin,
	PathPatientLogin,
	PathAdminLogin,
	PathPatientRegister,
}

const (
	BackendPathRegister              = "/auth/register"
	BackendPathPatientLogin          = "/auth/patient-login"
	BackendPathDoctorLogin           = "/auth/doctor-login"
	BackendPathAdminLogin            = "/auth/admin-login"
	BackendPathMe                    = "/auth/me"
	BackendPathProfile               = "/auth/profile"
	BackendPathChangePassword        = "/auth/change-password"
	BackendPathPatientDashboard      = "/patient/dashboard"
	BackendPathPatientDoctors        = "/patient/doctors"
	BackendPathReportUpload          = "/report/upload"
	BackendPathReportHistory         = "/report/history"
	BackendPathReportCompare         = "/report/compare"
	BackendPathReportFormat          = "/report/%s"
	BackendPathReportDownloadFormat  = "/report/%s/download"
	BackendPathReportReviewFormat    = "/report/%s/review"
	BackendPathDoctorDashboard       = "/doctor/dashboard"
	BackendPathReviewRequests        = "/doctor/review-requests"
	BackendPathReviewRequestsCount   = "/doctor/review-requests/count"
	BackendPathReviewSubmitFormat    = "/doctor/review-requests/%s/submit"
	BackendPathDoctorPatients        = "/doctor/patients"
	BackendPathDoctorPatientHistory  = "/doctor/patients/%s/history"
	BackendPathAdminDashboard        = "/admin/dashboard"
	BackendPathAdminDoctors          = "/admin/doctors"
	BackendPathAdminDoctorFormat     = "/admin/doctors/%s"
	BackendPathAdminDoctorActivity   = "/admin/doctors/%s/activity"
	BackendPathAdminPatients         = "/admin/patients"
	BackendPathAdminPatientHistory   = "/admin/patients/%s/history"
	BackendMultipartFieldReport      = "report"
	BackendMultipartFieldReportName  = "reportName"
	BackendMultipartFieldReportType  = "reportType"
	BackendMultipartFieldReportDate  = "reportDate"
)
