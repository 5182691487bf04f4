package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"lv33global/pkg/logger"
	"lv33global/pkg/s3"
)

// ObjectStore is the part of the S3 client the asset backend needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	ObjectURL(key string) string
}

var _ ObjectStore = (*s3.Client)(nil)

// S3 stores assets as objects under the "uploads/" key prefix while still
// handing out "/uploads/<name>" paths; the HTTP layer redirects those to
// ObjectURL.
type S3 struct {
	client ObjectStore
	now    func() time.Time
	logger *logger.Logger
}

func NewS3(client ObjectStore, log *logger.Logger) *S3 {
	return &S3{
		client: client,
		now:    time.Now,
		logger: log,
	}
}

func objectKey(name string) string {
	return "uploads/" + name
}

func (s *S3) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	name := UniqueName(s.now(), file.Filename)
	if _, err := s.client.UploadFile(ctx, objectKey(name), src, contentType); err != nil {
		return "", err
	}
	return PublicPath(name), nil
}

func (s *S3) Remove(ctx context.Context, publicPath string) {
	name, ok := NameFromPath(publicPath)
	if !ok {
		s.logger.Warn("[ASSETS] Refusing to remove path outside %s: %q", PublicPrefix, publicPath)
		return
	}
	if err := s.client.DeleteFile(ctx, objectKey(name)); err != nil {
		s.logger.Warn("[ASSETS] Failed to remove %s: %v", publicPath, err)
	}
}

// ObjectURL resolves a stored file name to its public object URL.
func (s *S3) ObjectURL(name string) string {
	return s.client.ObjectURL(objectKey(name))
}
