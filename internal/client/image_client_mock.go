package client

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// MockImageStore implements the image store behavior for tests that must not
// touch AWS credentials
type MockImageStore struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GeneratePresignedURLFunc func(ctx context.Context, fileName, contentType string) (string, string, error)
	DeleteFileFunc           func(ctx context.Context, fileURL string) error

	// Deleted records the URLs passed to DeleteFile
	Deleted []string
}

// NewMockImageStore creates a mock image store for testing
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

// GeneratePresignedURL returns a mock upload URL and public URL
func (m *MockImageStore) GeneratePresignedURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, fileName, contentType)
	}

	now := time.Now()
	key := fmt.Sprintf("posts/%s/%s/%s_%d%s",
		now.Format("2006"), now.Format("01"),
		uuid.New().String(), now.Unix(), path.Ext(fileName))

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
	uploadURL := fileURL + "?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Expires=300&X-Amz-Signature=mocksignature123"
	return uploadURL, fileURL, nil
}

// DeleteFile records the deletion and succeeds
func (m *MockImageStore) DeleteFile(ctx context.Context, fileURL string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, fileURL)
	}
	m.Deleted = append(m.Deleted, fileURL)
	return nil
}
