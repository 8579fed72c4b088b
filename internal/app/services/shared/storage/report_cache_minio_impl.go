package storage

import (
	"bytes"
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const metaFileName = "File-Name"

type minioReportCache struct {
	client     *minio.Client
	bucketName string
	expiry     time.Duration
	log        *zap.Logger
}

// NewMinioReportCache keeps downloaded report PDFs in an object bucket.
// Entries older than expiry count as misses.
func NewMinioReportCache(client *minio.Client, bucketName string, expiry time.Duration, logger *zap.Logger) contracts.ReportCache {
	return &minioReportCache{
		client:     client,
		bucketName: bucketName,
		expiry:     expiry,
		log:        logger,
	}
}

func objectName(ownerID, reportID string) string {
	return fmt.Sprintf(constvars.ReportCacheKeyFormat, ownerID, reportID)
}

func (c *minioReportCache) Get(ctx context.Context, ownerID, reportID string) (*models.ReportFile, bool, error) {
	name := objectName(ownerID, reportID)
	info, err := c.client.StatObject(ctx, c.bucketName, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrMinioGetObject(err, c.bucketName)
	}
	if c.expiry > 0 && time.Since(info.LastModified) > c.expiry {
		return nil, false, nil
	}

	object, err := c.client.GetObject(ctx, c.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, exceptions.ErrMinioGetObject(err, c.bucketName)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, false, exceptions.ErrMinioGetObject(err, c.bucketName)
	}

	c.log.Debug("minioReportCache.Get hit",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingObjectNameKey, name),
	)
	fileName := info.UserMetadata[metaFileName]
	if fileName == "" {
		fileName = reportID + ".pdf"
	}
	return &models.ReportFile{
		FileName:    fileName,
		ContentType: info.ContentType,
		Content:     content,
	}, true, nil
}

func (c *minioReportCache) Put(ctx context.Context, ownerID, reportID string, file *models.ReportFile) error {
	name := objectName(ownerID, reportID)
	_, err := c.client.PutObject(ctx, c.bucketName, name, bytes.NewReader(file.Content), int64(len(file.Content)), minio.PutObjectOptions{
		ContentType:  file.ContentType,
		UserMetadata: map[string]string{metaFileName: file.FileName},
	})
	if err != nil {
		c.log.Error("minioReportCache.Put error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingObjectNameKey, name),
			zap.Error(err),
		)
		return exceptions.ErrMinioPutObject(err, c.bucketName)
	}
	return nil
}
