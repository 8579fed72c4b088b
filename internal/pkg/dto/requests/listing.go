package requests

// ListQuery is the page/limit/search triple shared by every listing page.
type ListQuery struct {
	Page       int
	Limit      int
	Search     string
	ReportType string
}

type AddDoctor struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	Specialization string `json:"specialization,omitempty"`
}
