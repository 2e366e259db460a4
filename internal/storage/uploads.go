package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrInvalidUpload — нарушены ограничения загрузки (тип/размер).
	ErrInvalidUpload = errors.New("invalid upload")
)

// Uploads — контракт загрузки бинарных объектов в S3/MinIO.
type Uploads interface {
	// Upload кладёт объект по ключу и возвращает публичный URL.
	// Внутри — валидация contentType и size согласно конфигу.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// UploadsStorage — алиас-обёртка для внедрения зависимости.
type UploadsStorage interface {
	Uploads
}
