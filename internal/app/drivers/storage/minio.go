package storage

import (
	"context"
	"docai-portal/internal/app/config"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// NewMinio connects to the object store and makes sure the report
// download bucket exists.
func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, lifecycle *logrus.Logger) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		lifecycle.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx := context.Background()
	bucketName := internalConfig.Minio.ReportBucketName
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		lifecycle.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			lifecycle.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
		}
	}

	lifecycle.Info("Successfully connected to minio")
	return minioClient
}
