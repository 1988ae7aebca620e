// Package storage implements blob storage for uploaded assets on top of
// gocloud.dev buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"venturesroom/config"
	"venturesroom/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobFileStore implements service.FileStore over a gocloud bucket.
// The local driver is fileblob; swapping the opener switches to S3/GCS
// without touching callers.
type blobFileStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewFileStore opens the uploads bucket rooted at the configured directory.
func NewFileStore(params Params) (service.FileStore, error) {
	cfg := params.Config.Upload
	if cfg == nil {
		return nil, errors.New("upload configuration is required")
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve upload directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("upload bucket ready",
		slog.String("dir", dir),
		slog.String("publicBaseUrl", cfg.PublicBaseURL),
	)

	return &blobFileStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Save writes the content under the given key, overwriting any previous
// object with the same key.
func (s *blobFileStore) Save(ctx context.Context, key, contentType string, content io.Reader) (*service.StoredFile, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	size, err := io.Copy(w, content)
	if err != nil {
		w.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to finish %s", key)
	}

	return &service.StoredFile{
		Key:  key,
		URL:  s.publicBaseURL + "/" + key,
		Size: size,
	}, nil
}

// Open streams a stored object.
func (s *blobFileStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, translateNotFound(err, key)
	}

	return r, nil
}

// Exists reports whether an object is stored under the key.
func (s *blobFileStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s", key)
	}

	return exists, nil
}

// Delete removes a stored object.
func (s *blobFileStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return translateNotFound(err, key)
	}

	return nil
}

// translateNotFound maps gocloud's NotFound code onto os.ErrNotExist so
// callers can branch with errors.Is without importing gcerrors.
func translateNotFound(err error, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrapf(os.ErrNotExist, "object %s", key)
	}

	return errors.Wrapf(err, "storage operation failed for %s", key)
}
