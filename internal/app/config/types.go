package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Portal   AppPortal   `mapstructure:"portal"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
}

type App struct {
	Env                              string `mapstructure:"env"`
	Port                             string `mapstructure:"port"`
	Version                          string `mapstructure:"version"`
	Timezone                         string `mapstructure:"timezone"`
	FrontendDomain                   string `mapstructure:"frontend_domain"`
	MaxRequests                      int    `mapstructure:"max_requests"`
	LoginMaxRequests                 int    `mapstructure:"login_max_requests"`
	MaxTimeRequestsPerSeconds        int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds         int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte       int    `mapstructure:"request_body_limit_in_megabyte"`
	SessionExpiredTimeInHours        int    `mapstructure:"session_expired_time_in_hours"`
	SessionCookieSecure              bool   `mapstructure:"session_cookie_secure"`
	BackendRequestTimeoutInSeconds   int    `mapstructure:"backend_request_timeout_in_seconds"`
	BackendMaxRequestsPerSecond      int    `mapstructure:"backend_max_requests_per_second"`
	ReportDownloadCacheExpiryInHours int    `mapstructure:"report_download_cache_expiry_in_hours"`
}

// AppPortal points the portal at the REST backend it fronts.
type AppPortal struct {
	ApiUrl string `mapstructure:"api_url"`
}

type AppMinio struct {
	ReportBucketName string `mapstructure:"report_bucket_name"`
}

type AppRabbitMQ struct {
	PortalEventQueue string `mapstructure:"portal_event_queue"`
}

type AppMongoDB struct {
	PortalDBName string `mapstructure:"portal_db_name"`
}

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}
	MongoDB struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_filename"`
		OutputErrorFileName string `mapstructure:"output_error_filename"`
	}
	RabbitMQ struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Minio struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseSSL   bool   `mapstructure:"use_ssl"`
	}
)
