package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	LoginSuccess            = "Login successful!"
	AdminLoginSuccess       = "Login successful! Welcome to the Admin Panel."
	RegisterSuccess         = "Account created successfully! Welcome to DocAI."
	LogoutSuccess           = "Logged out successfully"
	ProfileUpdatedSuccess   = "Profile updated successfully"
	PasswordChangedSuccess  = "Password changed successfully"
	ReportUploadedSuccess   = "File uploaded and analyzed!"
	ReviewRequestedSuccess  = "Review requested successfully"
	ReviewSubmittedSuccess  = "Your review has been submitted successfully"
	ComparisonSuccess       = "Comparison generated successfully"
	DoctorAddedSuccess      = "Doctor added successfully"
	DoctorDeletedSuccess    = "Doctor deleted successfully"
	NotificationsGetSuccess = "get notifications successfully"
	SessionGetSuccess       = "get session successfully"
	SessionActivitySuccess  = "get session activity successfully"
	PageGetSuccess          = "get page successfully"
	HealthySuccess          = "healthy"
)
