package main

import (
	"context"
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/delivery/http/controllers"
	"docai-portal/internal/app/delivery/http/middlewares"
	"docai-portal/internal/app/delivery/http/routers"
	"docai-portal/internal/app/drivers/database"
	"docai-portal/internal/app/drivers/logger"
	"docai-portal/internal/app/drivers/messaging"
	"docai-portal/internal/app/drivers/storage"
	"docai-portal/internal/app/services/core/accounts"
	"docai-portal/internal/app/services/core/admins"
	"docai-portal/internal/app/services/core/audit"
	"docai-portal/internal/app/services/core/doctors"
	"docai-portal/internal/app/services/core/patients"
	"docai-portal/internal/app/services/shared/apiclient"
	"docai-portal/internal/app/services/shared/durable"
	"docai-portal/internal/app/services/shared/events"
	"docai-portal/internal/app/services/shared/notifier"
	"docai-portal/internal/app/services/shared/redis"
	reportstorage "docai-portal/internal/app/services/shared/storage"
	"docai-portal/internal/pkg/utils"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	lifecycle := logrus.New()
	lifecycle.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		lifecycle.Fatalf("Error loading internal config: %v", err)
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		lifecycle.Fatalf("Error loading driver config: %v", err)
	}
	lifecycle = logger.NewLogrusLogger(internalConfig.App.Env, os.Stdout)
	utils.SetAppEnv(internalConfig.App.Env)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		lifecycle.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		lifecycle.Fatalf("Error building zap logger: %v", err)
	}

	mongoDB := database.NewMongoDB(driverConfig, lifecycle)
	redisClient := database.NewRedisClient(driverConfig, lifecycle)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, lifecycle)
	minioClient := storage.NewMinio(driverConfig, internalConfig, lifecycle)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Logger:         log,
		Lifecycle:      lifecycle,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	err = bootstrapingTheApp(bootstrap, minioClient)
	if err != nil {
		lifecycle.Fatalf("Error bootstrapping the portal: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		lifecycle.Infof("Portal %s listening on %s", internalConfig.App.Version, server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lifecycle.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	lifecycle.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Errorf("Error closing drivers: %v", err)
	}

	lifecycle.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger
	sessionTTL := time.Duration(internalConfig.App.SessionExpiredTimeInHours) * time.Hour

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Notifications
	flashNotifier := notifier.NewFlashNotifier(redisRepository, sessionTTL, log)

	// Backend
	apiClient := apiclient.New(apiclient.Config{
		BaseURL: internalConfig.Portal.ApiUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.App.BackendRequestTimeoutInSeconds) * time.Second,
		},
		Storage:              durable.NewContextStorage(durable.NewMemoryStorage()),
		Notifier:             flashNotifier,
		Logger:               log,
		MaxRequestsPerSecond: internalConfig.App.BackendMaxRequestsPerSecond,
	})
	authService := apiclient.NewAuthService(apiClient)
	patientService := apiclient.NewPatientService(apiClient)
	reportService := apiclient.NewReportService(apiClient)
	doctorService := apiclient.NewDoctorService(apiClient)
	adminService := apiclient.NewAdminService(apiClient)

	// Audit
	sessionRecorder := audit.NewSessionEventMongoRepository(
		bootstrap.MongoDB.Database(internalConfig.MongoDB.PortalDBName),
		log,
	)

	// Events
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.PortalEventQueue, log)
	if err != nil {
		return err
	}

	// Report downloads
	reportCache := reportstorage.NewMinioReportCache(
		minioClient,
		internalConfig.Minio.ReportBucketName,
		time.Duration(internalConfig.App.ReportDownloadCacheExpiryInHours)*time.Hour,
		log,
	)

	// Middlewares
	storageFactory := func(portalSessionID string) contracts.DurableStorage {
		return durable.NewRedisStorage(redisRepository, portalSessionID, sessionTTL, log)
	}
	middlewares := middlewares.NewMiddlewares(log, internalConfig, authService, sessionRecorder, storageFactory)

	// Use cases and controllers
	accountUsecase := accounts.NewAccountUsecase(authService, sessionRecorder, flashNotifier, log)
	patientUsecase := patients.NewPatientUsecase(patientService, reportService, reportCache, eventPublisher, flashNotifier, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorService, eventPublisher, flashNotifier, log)
	adminUsecase := admins.NewAdminUsecase(adminService, eventPublisher, flashNotifier, log)

	handlers := &routers.Controllers{
		Auth:         controllers.NewAuthController(log, accountUsecase, internalConfig),
		Patient:      controllers.NewPatientController(log, patientUsecase, internalConfig),
		Doctor:       controllers.NewDoctorController(log, doctorUsecase, internalConfig),
		Admin:        controllers.NewAdminController(log, adminUsecase, internalConfig),
		Notification: controllers.NewNotificationController(log, flashNotifier),
		Health:       controllers.NewHealthController(internalConfig.App.Version),
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.Lifecycle, middlewares, handlers)
	log.Info("Portal bootstrapped", zap.String("api_url", internalConfig.Portal.ApiUrl))
	return nil
}
