package storage

import (
	"context"
	"net/url"
	"time"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// StubImageStorage fabricates URLs without talking to any backend. It is
// used when storage.enabled is false so the image endpoints stay usable in
// development.
type StubImageStorage struct {
	BaseURL string
}

var _ catalogapp.ImageStorage = (*StubImageStorage)(nil)

// NewStubImageStorage creates a StubImageStorage
func NewStubImageStorage(baseURL string) *StubImageStorage {
	if baseURL == "" {
		baseURL = "http://localhost:9000/storefront-media"
	}
	return &StubImageStorage{BaseURL: baseURL}
}

// GenerateUploadURL returns BaseURL/key with an expires query parameter
func (s *StubImageStorage) GenerateUploadURL(_ context.Context, key, _ string, expiresIn time.Duration) (string, time.Time, error) {
	return s.url(key, expiresIn)
}

// GenerateDownloadURL returns BaseURL/key with an expires query parameter
func (s *StubImageStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	return s.url(key, expiresIn)
}

// DeleteObject does nothing
func (s *StubImageStorage) DeleteObject(_ context.Context, key string) error {
	if key == "" {
		return errKeyRequired
	}
	return nil
}

func (s *StubImageStorage) url(key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errKeyRequired
	}
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	expiresAt := time.Now().Add(expiresIn)
	q := url.Values{"expires": {expiresAt.UTC().Format(time.RFC3339)}}
	return s.BaseURL + "/" + key + "?" + q.Encode(), expiresAt, nil
}
