package models

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type PatientDashboard struct {
	TotalReports   int            `json:"totalReports"`
	LastReportDate *string        `json:"lastReportDate"`
	RiskAlerts     int            `json:"riskAlerts"`
	QuickActions   []string       `json:"quickActions"`
	RecentReports  []RecentReport `json:"recentReports"`
	HealthTrends   []interface{}  `json:"healthTrends"`
}

type RecentReport struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Doctor string `json:"doctor"`
}

type DoctorDashboard struct {
	TotalPatients   int             `json:"totalPatients"`
	PendingReports  int             `json:"pendingReports"`
	AbnormalCases   int             `json:"abnormalCases"`
	RecentPatients  []RecentPatient `json:"recentPatients"`
	MonthlyStats    []interface{}   `json:"monthlyStats"`
	DiagnosticStats []interface{}   `json:"diagnosticStats"`
	PriorityAlerts  []interface{}   `json:"priorityAlerts"`
}

type RecentPatient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LastReport string `json:"lastReport"`
}

// AdminDashboard is passed through as the backend shapes it.
type AdminDashboard map[string]interface{}

type PatientHistory struct {
	Patient *PatientSummary `json:"patient"`
	Reports []Report        `json:"reports"`
}

type DoctorActivity map[string]interface{}
