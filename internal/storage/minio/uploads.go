package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	mclient "github.com/minio/minio-go/v7"

	"github.com/creatorqa/profile-service/internal/storage"
)

// Upload кладёт объект по ключу и возвращает его публичный URL.
// Валидирует contentType и size согласно конфигу; повторная загрузка по тому
// же ключу перезаписывает объект.
func (s *UploadsStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	const op = "storage/minio/uploads/Upload"

	if size <= 0 || size > s.cfg.Avatar.MaxSizeBytes {
		return "", storage.ErrInvalidUpload
	}

	if !isAllowedContentType(s.cfg.Avatar.AllowedContentTypes, contentType) {
		return "", storage.ErrInvalidUpload
	}

	if _, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, body, size, mclient.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.objectURL(key), nil
}

// objectURL собирает публичный URL объекта: при заданном PublicBaseURL —
// <base>/<key>, иначе — прямой адрес через endpoint и бакет.
func (s *UploadsStorage) objectURL(key string) string {
	if base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}

	endpoint := strings.TrimRight(s.cfg.S3.Endpoint, "/")
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return endpoint + "/" + s.cfg.S3.Bucket + "/" + key
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
