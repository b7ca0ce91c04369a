// Package mocks provides a mock implementation of the Storage interface for testing.
package mocks

import (
	"context"
	"time"
)

// MockStorage is a mock implementation of Storage.
type MockStorage struct {
	PresignDownloadFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignUploadFunc   func(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

func (m *MockStorage) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.PresignDownloadFunc != nil {
		return m.PresignDownloadFunc(ctx, key, expiry)
	}
	return "", nil
}

func (m *MockStorage) PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if m.PresignUploadFunc != nil {
		return m.PresignUploadFunc(ctx, key, contentType, expiry)
	}
	return "", nil
}
