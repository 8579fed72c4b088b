package models

type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusRequested ReviewStatus = "requested"
	ReviewStatusReviewed  ReviewStatus = "reviewed"
)

// CanRequestReview reports whether a patient may still route the report to a
// doctor. Once reviewed, only the backend changes the status.
func (s ReviewStatus) CanRequestReview() bool {
	return s == "" || s == ReviewStatusPending
}

type Report struct {
	ID           string          `json:"_id"`
	ReportName   string          `json:"reportName"`
	ReportType   string          `json:"reportType"`
	ReportDate   string          `json:"reportDate"`
	FilePath     string          `json:"filePath,omitempty"`
	CreatedAt    string          `json:"createdAt"`
	AnalyzedData *Analysis       `json:"analyzedData,omitempty"`
	DoctorReview *DoctorReview   `json:"doctorReview,omitempty"`
	Patient      *PatientSummary `json:"patientId,omitempty"`
}

type DoctorReview struct {
	Status       ReviewStatus `json:"status"`
	DoctorID     string       `json:"doctorId,omitempty"`
	ReviewedDate string       `json:"reviewedDate,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

type Analysis struct {
	ReportDate string      `json:"reportDate"`
	Summary    string      `json:"summary"`
	Parameters []Parameter `json:"parameters"`
	RedFlags   []string    `json:"redFlags"`
}

type Parameter struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

type ChangeType string

const (
	ChangeImprovement   ChangeType = "improvement"
	ChangeDeterioration ChangeType = "deterioration"
	ChangeStable        ChangeType = "stable"
	ChangeNew           ChangeType = "new"
)

type Comparison struct {
	Summary          string            `json:"summary"`
	ParameterChanges []ParameterChange `json:"parameterChanges"`
	RedFlagsStatus   RedFlagsStatus    `json:"redFlagsStatus"`
	Recommendations  []string          `json:"recommendations"`
}

type ParameterChange struct {
	Name       string     `json:"name"`
	PrevValue  string     `json:"prevValue"`
	NewValue   string     `json:"newValue"`
	Unit       string     `json:"unit"`
	ChangeType ChangeType `json:"changeType"`
	Insight    string     `json:"insight"`
}

type RedFlagsStatus struct {
	Resolved   []string `json:"resolved"`
	Persisting []string `json:"persisting"`
	New        []string `json:"new"`
}

// ReportFile is a downloaded report body.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
