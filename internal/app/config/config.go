package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// newViper maps nested keys such as app.port onto APP_PORT style
// environment variables. Every key needs a default so Unmarshal sees it.
func newViper(defaults map[string]interface{}) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewInternalConfig() (*InternalConfig, error) {
	v := newViper(map[string]interface{}{
		"app.env":                                   "development",
		"app.port":                                  "8080",
		"app.version":                               "v1.0",
		"app.timezone":                              "Asia/Jakarta",
		"app.frontend_domain":                       "http://localhost:5173",
		"app.max_requests":                          100,
		"app.login_max_requests":                    10,
		"app.max_time_requests_per_seconds":         60,
		"app.shutdown_timeout_in_seconds":           10,
		"app.request_body_limit_in_megabyte":        10,
		"app.session_expired_time_in_hours":         24,
		"app.session_cookie_secure":                 false,
		"app.backend_request_timeout_in_seconds":    10,
		"app.backend_max_requests_per_second":       20,
		"app.report_download_cache_expiry_in_hours": 24,
		"portal.api_url":                            "http://localhost:3000/api",
		"minio.report_bucket_name":                  "docai-reports",
		"rabbitmq.portal_event_queue":               "docai.portal.events",
		"mongodb.portal_db_name":                    "docai_portal",
	})

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, fmt.Errorf("unmarshal internal config: %w", err)
	}
	internalConfig.Portal.ApiUrl = strings.TrimRight(internalConfig.Portal.ApiUrl, "/")
	return internalConfig, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	v := newViper(map[string]interface{}{
		"mongodb.host":                 "localhost",
		"mongodb.port":                 "27017",
		"mongodb.username":             "defaultUsername",
		"mongodb.password":             "defaultPassword",
		"redis.host":                   "localhost",
		"redis.port":                   "6379",
		"redis.password":               "",
		"logger.level":                 "debug",
		"logger.output_filename":       "logger.log",
		"logger.output_error_filename": "logger_error.log",
		"rabbitmq.host":                "localhost",
		"rabbitmq.port":                "5672",
		"rabbitmq.username":            "guest",
		"rabbitmq.password":            "guest",
		"minio.host":                   "localhost",
		"minio.port":                   "9000",
		"minio.username":               "minioadmin",
		"minio.password":               "minioadmin",
		"minio.use_ssl":                false,
	})

	driverConfig := &DriverConfig{}
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, fmt.Errorf("unmarshal driver config: %w", err)
	}
	return driverConfig, nil
}
