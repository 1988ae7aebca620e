package usecase

import (
	"context"
	"io"
)

// UploadFile is one incoming multipart file.
type UploadFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadedImage describes a stored image returned to clients.
type UploadedImage struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// ImageStream is an opened stored image ready for streaming.
type ImageStream struct {
	Content     io.ReadCloser
	ContentType string
}

// UploadUsecase defines the interface for the upload subsystem: ad-hoc image
// uploads plus per-resource storage buckets keyed by (type, id, filename).
type UploadUsecase interface {
	// UploadImage validates (image MIME, size cap) and stores one image
	// under a generated collision-free name.
	UploadImage(ctx context.Context, file UploadFile) (*UploadedImage, error)

	// UploadImages stores a batch with the same rules; the whole batch
	// fails on the first invalid file.
	UploadImages(ctx context.Context, files []UploadFile) ([]*UploadedImage, error)

	// OpenImage streams a previously uploaded ad-hoc image.
	OpenImage(ctx context.Context, filename string) (*ImageStream, error)

	// StoreResource saves a file under uploads/<type>/<id>/<filename>,
	// latest write winning, and records the public URL on the owning
	// record (user avatar, tenant logo, product image).
	StoreResource(ctx context.Context, resourceType, resourceID string, file UploadFile) (*UploadedImage, error)

	// DeleteResource removes one stored resource file.
	DeleteResource(ctx context.Context, resourceType, resourceID, filename string) error
}
