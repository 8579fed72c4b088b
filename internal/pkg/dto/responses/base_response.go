package responses

import "docai-portal/internal/app/models"

type ResponseDTO struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// RedirectDTO is the body sent along a 303 so that script clients which do
// not follow redirects still learn where to go.
type RedirectDTO struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirectTo"`
}
