package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"nefield":  "must be different from %s",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must be a date in the format %s",
	"role":     "must be one of [patient doctor admin]",
}

const (
	// Notifications shown to the end user for backend failures.
	NotifyNetworkError    = "Network error. Please check your connection."
	NotifyValidationError = "Validation error"
	NotifyGenericError    = "An error occurred"
	NotifyStatusFormat    = "Request failed with status code %d"
)

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientPasswordsDoNotMatch           = "New passwords do not match"
	ErrClientSameReportCompared            = "Please select two different reports"
	ErrClientReviewNotesRequired           = "Please add your review notes before submitting"
	ErrClientUploadFieldsRequired          = "Please fill in all fields and select a file"
	ErrClientInvalidReportFile             = "the report must be a PDF file"
	ErrClientPageNotFound                  = "page not found"
	ErrClientFillAllFields                 = "Please fill in all fields"
	ErrClientFixFormErrors                 = "Please fix the errors in the form"
	ErrClientSelectDoctor                  = "Please select a doctor"
	ErrClientSelectTwoReports              = "Please select two different reports to compare"
	ErrClientReviewRequestNotFound         = "Report not found"
	ErrClientLoading                       = "session is loading"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevServerDeadlineExceeded   = "backend call exceeded the request deadline"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevDecodeBackendResponse    = "failed to decode backend response for %s"
	ErrDevInvalidRoleType          = "invalid role type, should be 'patient', 'doctor' or 'admin'"
	ErrDevNoSessionInContext       = "no session store found in request context"
	ErrDevRoleMismatch             = "backend returned role %s for a %s login"
	ErrDevNotAuthenticated         = "operation requires an authenticated session"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevFileStorageRead          = "failed to read session file %s"
	ErrDevFileStorageWrite         = "failed to write session file %s"
	ErrDevRedisGetNoData           = "failed to get data from redis with key %s"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRedisRightPushToList     = "failed to push data to redis list"
	ErrDevRedisLeftPopList         = "failed to pop data from redis list"
	ErrDevMongoInsertDocument      = "failed to insert document into %s"
	ErrDevMongoFindDocument        = "failed to find documents in %s"
	ErrDevMinioPutObject           = "failed to put object into bucket %s"
	ErrDevMinioGetObject           = "failed to get object from bucket %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
)

// TagsWithParams lists validator tags whose message embeds the tag param.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"eqfield":  true,
	"nefield":  true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}
