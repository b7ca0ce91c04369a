package storage

import (
	"context"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// PresignDownload generates a pre-signed URL for downloading an image.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PresignUpload generates a pre-signed URL for uploading an image.
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
