package requests

import "io"

type UploadReport struct {
	ReportName  string `validate:"required"`
	ReportType  string `validate:"required"`
	ReportDate  string `validate:"required,datetime=2006-01-02"`
	FileName    string `validate:"required"`
	ContentType string
	File        io.Reader `validate:"required"`
}

type ReportHistoryQuery struct {
	Page       int
	Limit      int
	ReportType string
	Search     string
	StartDate  string
	EndDate    string
}

type RequestReview struct {
	DoctorID string `json:"doctorId" validate:"required"`
}

type CompareReports struct {
	ReportID1 string `json:"reportId1" validate:"required"`
	ReportID2 string `json:"reportId2" validate:"required,nefield=ReportID1"`
}

type SubmitReview struct {
	Notes string `json:"notes" validate:"required"`
}
