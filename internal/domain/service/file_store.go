package service

import (
	"context"
	"io"
)

// StoredFile describes a file persisted by the upload subsystem.
type StoredFile struct {
	// Key is the storage key relative to the uploads root, e.g.
	// "images/product-1712345678901234567-a1b2c3d4.png".
	Key string

	// URL is the public relative URL returned to clients.
	URL string

	// Size is the stored byte count.
	Size int64
}

// FileStore abstracts blob storage for uploaded assets. Keys use forward
// slashes regardless of platform.
type FileStore interface {
	// Save writes the content under the given key, overwriting any previous
	// object with the same key (latest wins).
	Save(ctx context.Context, key, contentType string, content io.Reader) (*StoredFile, error)

	// Open streams a stored object. Absent keys yield an error matching
	// os.ErrNotExist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether an object is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a stored object. Deleting an absent key is an error.
	Delete(ctx context.Context, key string) error
}
