package responses

import "docai-portal/internal/app/models"

// BackendError is the error body of the REST backend.
type BackendError struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []BackendFieldError `json:"errors"`
}

type BackendFieldError struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	Path    string `json:"path,omitempty"`
}

// AuthEnvelope covers both shapes the backend uses for auth responses:
// flat {user, token} and wrapped {data: {user, token}}.
type AuthEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Data    *AuthData    `json:"data"`
}

type AuthData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Data    *models.User `json:"data"`
}

type PatientDashboardEnvelope struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message"`
	User      *models.User            `json:"user"`
	Dashboard models.PatientDashboard `json:"dashboard"`
}

type DoctorDashboardEnvelope struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	User      *models.User           `json:"user"`
	Dashboard models.DoctorDashboard `json:"dashboard"`
}

type CountEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type ReportListEnvelope struct {
	Success    bool               `json:"success"`
	Data       []models.Report    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

type ReportEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    models.Report `json:"data"`
}

type ComparisonEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Comparison models.Comparison `json:"comparison"`
	} `json:"data"`
}

type DoctorListEnvelope struct {
	Success    bool                   `json:"success"`
	Data       []models.DoctorSummary `json:"data"`
	Doctors    []models.DoctorSummary `json:"doctors"`
	Pagination *models.Pagination     `json:"pagination"`
}

// List prefers data and falls back to doctors.
func (e *DoctorListEnvelope) List() []models.DoctorSummary {
	if e.Data != nil {
		return e.Data
	}
	return e.Doctors
}

type DoctorEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *models.DoctorSummary `json:"data"`
	Single  *models.DoctorSummary `json:"doctor"`
}

func (e *DoctorEnvelope) Doctor() *models.DoctorSummary {
	if e.Data != nil {
		return e.Data
	}
	return e.Single
}

type PatientListEnvelope struct {
	Success    bool                    `json:"success"`
	Data       []models.PatientSummary `json:"data"`
	Pagination *models.Pagination      `json:"pagination"`
}

type PatientHistoryEnvelope struct {
	Success    bool                  `json:"success"`
	Data       models.PatientHistory `json:"data"`
	Pagination *models.Pagination    `json:"pagination"`
}

// DataMapEnvelope carries free-form backend payloads under data.
type DataMapEnvelope struct {
	Success    bool                   `json:"success"`
	Data       map[string]interface{} `json:"data"`
	Pagination *models.Pagination     `json:"pagination"`
}
