package storage

import (
	"context"
	"io"

	"github.com/notevault/vtu-notes-api/pkg/config"
)

// Storage persists uploaded note files and resolves the public URL a
// stored object is served from.
type Storage interface {
	// SaveStream writes the reader's contents under the given key and
	// returns the stored key.
	SaveStream(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Open returns a reader for a stored object.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a stored object. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the URL the object is publicly served from.
	PublicURL(key string) string
}

// New builds the storage backend named by the config driver.
func New(cfg config.StorageConfig) (Storage, error) {
	if cfg.Driver == config.StorageDriverS3 {
		return NewS3(cfg)
	}
	return NewLocal(cfg)
}
