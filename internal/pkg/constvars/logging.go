package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingPortalSessionIDKey = "portal_session_id"
	LoggingUserIDKey          = "user_id"
	LoggingRoleKey            = "role"
	LoggingReportIDKey        = "report_id"
	LoggingDoctorIDKey        = "doctor_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingEventKindKey       = "event_kind"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingStatusCodeKey      = "status_code"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingRedirectToKey      = "redirect_to"
	LoggingObjectNameKey      = "object_name"
	LoggingQueueKey           = "queue"
)
