package impl

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"venturesroom/config"
	deliverycontext "venturesroom/internal/delivery/context"
	"venturesroom/internal/domain/constants"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/domain/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxImageBytes = 5 << 20 // 5 MiB
	imagePrefix          = "images"
	randomSuffixBytes    = 4
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store         service.FileStore
	userRepo      repository.UserRepository
	startupRepo   repository.StartupRepository
	structureRepo repository.StructureRepository
	maxImageBytes int64
	logger        *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Store         service.FileStore
	UserRepo      repository.UserRepository
	StartupRepo   repository.StartupRepository
	StructureRepo repository.StructureRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxImageBytes > 0 {
		maxImageBytes = params.Config.Upload.MaxImageBytes
	}

	return &uploadService{
		store:         params.Store,
		userRepo:      params.UserRepo,
		startupRepo:   params.StartupRepo,
		structureRepo: params.StructureRepo,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates and stores one image under a generated name.
func (srv *uploadService) UploadImage(ctx context.Context, file usecase.UploadFile) (*usecase.UploadedImage, error) {
	data, contentType, err := srv.readImage(file)
	if err != nil {
		return nil, err
	}

	key := imagePrefix + "/" + generatedImageName(file.Filename)

	stored, err := srv.store.Save(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image stored",
		slog.String("key", stored.Key), slog.Int64("size", stored.Size))

	return &usecase.UploadedImage{
		Filename: path.Base(stored.Key),
		URL:      stored.URL,
		Size:     stored.Size,
	}, nil
}

// UploadImages stores a batch with the same rules; the whole batch fails on
// the first invalid file.
func (srv *uploadService) UploadImages(ctx context.Context, files []usecase.UploadFile) ([]*usecase.UploadedImage, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no files provided")
	}

	uploaded := make([]*usecase.UploadedImage, 0, len(files))
	for _, file := range files {
		image, err := srv.UploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, image)
	}

	return uploaded, nil
}

// OpenImage streams a previously uploaded ad-hoc image.
func (srv *uploadService) OpenImage(ctx context.Context, filename string) (*usecase.ImageStream, error) {
	if !safeFileName(filename) {
		return nil, domainerrors.ErrFileNotFound
	}

	reader, err := srv.store.Open(ctx, imagePrefix+"/"+filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to open image")
	}

	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &usecase.ImageStream{
		Content:     reader,
		ContentType: contentType,
	}, nil
}

// StoreResource saves a file under <type>/<id>/<filename> and records the
// public URL on the owning record.
func (srv *uploadService) StoreResource(ctx context.Context, resourceType, resourceID string, file usecase.UploadFile) (*usecase.UploadedImage, error) {
	if !validResourceType(resourceType) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown storage type")
	}

	ownerID, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("resource id must be a UUID")
	}

	filename := path.Base(file.Filename)
	if !safeFileName(filename) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid file name")
	}

	data, contentType, err := srv.readImage(file)
	if err != nil {
		return nil, err
	}

	// Latest wins per (type, id, filename) key.
	key := fmt.Sprintf("%s/%s/%s", resourceType, ownerID, filename)

	stored, err := srv.store.Save(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store resource file")
	}

	if err := srv.recordResourceURL(ctx, resourceType, ownerID, stored.URL); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Resource stored",
		slog.String("type", resourceType), slog.String("key", stored.Key))

	return &usecase.UploadedImage{
		Filename: filename,
		URL:      stored.URL,
		Size:     stored.Size,
	}, nil
}

// DeleteResource removes one stored resource file.
func (srv *uploadService) DeleteResource(ctx context.Context, resourceType, resourceID, filename string) error {
	if !validResourceType(resourceType) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown storage type")
	}
	if !safeFileName(filename) || !safeFileName(resourceID) {
		return domainerrors.ErrFileNotFound
	}

	key := fmt.Sprintf("%s/%s/%s", resourceType, resourceID, filename)
	if err := srv.store.Delete(ctx, key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domainerrors.ErrFileNotFound
		}

		return errors.Wrap(err, "failed to delete resource file")
	}

	srv.log(ctx).Info("Resource deleted", slog.String("key", key))

	return nil
}

// readImage buffers the upload, enforcing the size cap and the image/* MIME
// requirement via content sniffing.
func (srv *uploadService) readImage(file usecase.UploadFile) ([]byte, string, error) {
	if file.Size > srv.maxImageBytes {
		return nil, "", domainerrors.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file.Content, srv.maxImageBytes+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > srv.maxImageBytes {
		return nil, "", domainerrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, "", domainerrors.ErrValidationFailed.WrapMessage("empty file")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", domainerrors.ErrUnsupportedFileType
	}

	return data, contentType, nil
}

// recordResourceURL writes the stored URL back onto the owning record.
// Product images are referenced from the product update flow instead.
func (srv *uploadService) recordResourceURL(ctx context.Context, resourceType string, ownerID uuid.UUID, url string) error {
	var err error
	switch resourceType {
	case constants.ResourceAvatar:
		err = srv.userRepo.UpdateAvatarURL(ctx, ownerID, url)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
	case constants.ResourceStartupLogo:
		err = srv.startupRepo.UpdateLogoURL(ctx, ownerID, url)
		if errors.Is(err, repository.ErrStartupNotFound) {
			return domainerrors.ErrStartupNotFound
		}
	case constants.ResourceStructLogo:
		err = srv.structureRepo.UpdateLogoURL(ctx, ownerID, url)
		if errors.Is(err, repository.ErrStructureNotFound) {
			return domainerrors.ErrStructureNotFound
		}
	case constants.ResourceProductImage:
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "failed to record resource URL")
	}

	return nil
}

func validResourceType(resourceType string) bool {
	switch resourceType {
	case constants.ResourceAvatar,
		constants.ResourceStartupLogo,
		constants.ResourceStructLogo,
		constants.ResourceProductImage:
		return true
	default:
		return false
	}
}

// safeFileName rejects names that could escape the storage prefix.
func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, "/\\")
}

// generatedImageName builds a collision-free stored name, keeping the
// original extension.
func generatedImageName(original string) string {
	suffix := make([]byte, randomSuffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		// Fall back to timestamp-only uniqueness.
		return fmt.Sprintf("product-%d%s", time.Now().UnixNano(), strings.ToLower(path.Ext(original)))
	}

	return fmt.Sprintf("product-%d-%s%s",
		time.Now().UnixNano(),
		hex.EncodeToString(suffix),
		strings.ToLower(path.Ext(original)),
	)
}
