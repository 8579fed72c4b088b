package models

type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Age      *int   `json:"age,omitempty"`
	Address  string `json:"address,omitempty"`
}

// PatientSummary is the patient shape embedded in doctor/admin listings.
type PatientSummary struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Age      *int   `json:"age,omitempty"`
	Address  string `json:"address,omitempty"`
}

type DoctorSummary struct {
	ID             string `json:"_id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}
