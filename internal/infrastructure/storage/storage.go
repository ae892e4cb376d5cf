package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/folio-hq/folio/internal/shared/config"
)

// Storage keeps uploaded files and hands out their public URLs.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// New builds the backend selected by storage.type.
func New(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
