package responses

import "docai-portal/internal/app/models"

type MenuItem struct {
	To    string `json:"to"`
	Label string `json:"label"`
	Badge *int   `json:"badge,omitempty"`
}

type Menu struct {
	Role        models.Role `json:"role"`
	Title       string      `json:"title"`
	Items       []MenuItem  `json:"items"`
	LogoutRoute string      `json:"logoutRoute"`
}

type SessionView struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
	RedirectTo    string       `json:"redirectTo,omitempty"`
}

type SessionActivityPage struct {
	User   *models.User          `json:"user"`
	Events []models.SessionEvent `json:"events"`
}

type PatientDashboardPage struct {
	User      *models.User            `json:"user"`
	Menu      Menu                    `json:"menu"`
	Dashboard models.PatientDashboard `json:"dashboard"`
}

type DoctorDashboardPage struct {
	User      *models.User           `json:"user"`
	Menu      Menu                   `json:"menu"`
	Dashboard models.DoctorDashboard `json:"dashboard"`
}

type AdminDashboardPage struct {
	User      *models.User          `json:"user"`
	Menu      Menu                  `json:"menu"`
	Dashboard models.AdminDashboard `json:"dashboard"`
}

type ReportListPage struct {
	Reports    []models.Report    `json:"reports"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

type PatientListPage struct {
	Patients   []models.PatientSummary `json:"patients"`
	Pagination *models.Pagination      `json:"pagination,omitempty"`
}

type DoctorListPage struct {
	Doctors    []models.DoctorSummary `json:"doctors"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
}

type ReportDetailPage struct {
	Report           models.Report          `json:"report"`
	CanRequestReview bool                   `json:"canRequestReview"`
	Doctors          []models.DoctorSummary `json:"doctors,omitempty"`
}

type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
