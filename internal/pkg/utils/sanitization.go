package utils

import (
	"docai-portal/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeRegisterForm(input *requests.RegisterForm) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = sanitizeEmail(input.Email)
	input.Age = strings.TrimSpace(input.Age)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
}

func SanitizeUploadReportRequest(input *requests.UploadReport) {
	input.ReportName = strings.TrimSpace(input.ReportName)
	input.ReportType = strings.TrimSpace(input.ReportType)
	input.ReportDate = strings.TrimSpace(input.ReportDate)
}

func SanitizeSubmitReviewRequest(input *requests.SubmitReview) {
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCompareReportsRequest(input *requests.CompareReports) {
	input.ReportID1 = strings.TrimSpace(input.ReportID1)
	input.ReportID2 = strings.TrimSpace(input.ReportID2)
}

func SanitizeAddDoctorRequest(input *requests.AddDoctor) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = sanitizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Specialization = strings.TrimSpace(input.Specialization)
}
