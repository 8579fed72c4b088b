package constvars

const (
	EventReviewRequested = "review.requested"
	EventReviewSubmitted = "review.submitted"
	EventReportUploaded  = "report.uploaded"
	EventDoctorAdded     = "doctor.added"
)

const (
	MongoCollectionSessionEvents = "session_events"
)
