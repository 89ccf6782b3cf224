package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
)

// ErrKeyNotFound is returned when a blob does not exist.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a JSON blob store keyed by slash-separated paths
// (e.g. "verifications/user@example.com.json").
type Store interface {
	PutJSON(ctx context.Context, key string, value interface{}) error
	GetJSON(ctx context.Context, key string, out interface{}) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// New selects the backend once at startup from configuration.
func New(cfg config.StorageConfig, minioCfg config.MinIOConfig) (Store, error) {
	switch cfg.Backend {
	case "minio":
		return NewMinioStore(minioCfg)
	case "local", "":
		return NewLocalStore(cfg.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
