package catalog

import (
	"context"
	"time"
)

// ImageStorage hands out presigned URLs for product images kept in
// object storage
type ImageStorage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, key string) error
}
