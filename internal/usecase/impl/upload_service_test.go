package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"venturesroom/config"
	"venturesroom/internal/domain/constants"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/service"
	mockRepo "venturesroom/internal/mocks/repository"
	mockService "venturesroom/internal/mocks/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngBytes carries a real PNG signature so content sniffing sees image/png.
func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 32)...)
}

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service       usecase.UploadUsecase
	store         *mockService.MockFileStore
	userRepo      *mockRepo.MockUserRepository
	startupRepo   *mockRepo.MockStartupRepository
	structureRepo *mockRepo.MockStructureRepository
}

func createTestUploadService(t *testing.T, maxImageBytes int64) uploadServiceFixtures {
	store := mockService.NewMockFileStore(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	startupRepo := mockRepo.NewMockStartupRepository(t)
	structureRepo := mockRepo.NewMockStructureRepository(t)

	cfg := newTestConfig(false)
	cfg.Upload = &config.UploadConfig{MaxImageBytes: maxImageBytes}

	service := NewUploadService(UploadServiceParams{
		Store:         store,
		UserRepo:      userRepo,
		StartupRepo:   startupRepo,
		StructureRepo: structureRepo,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return uploadServiceFixtures{
		service:       service,
		store:         store,
		userRepo:      userRepo,
		startupRepo:   startupRepo,
		structureRepo: structureRepo,
	}
}

func TestUploadService_UploadImage(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	data := pngBytes()

	fx.store.On("Save", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "images/product-") && strings.HasSuffix(key, ".png")
	}), "image/png", mock.Anything).
		Return(&service.StoredFile{
			Key:  "images/product-1-abcd.png",
			URL:  "/uploads/images/product-1-abcd.png",
			Size: int64(len(data)),
		}, nil)

	image, err := fx.service.UploadImage(ctx, usecase.UploadFile{
		Filename: "Photo.PNG",
		Size:     int64(len(data)),
		Content:  bytes.NewReader(data),
	})
	require.NoError(t, err)
	assert.Equal(t, "product-1-abcd.png", image.Filename)
	assert.Equal(t, "/uploads/images/product-1-abcd.png", image.URL)
	assert.Equal(t, int64(len(data)), image.Size)
}

func TestUploadService_UploadImage_RejectsNonImage(t *testing.T) {
	fx := createTestUploadService(t, 0)

	_, err := fx.service.UploadImage(context.Background(), usecase.UploadFile{
		Filename: "notes.txt",
		Content:  strings.NewReader("plain text, not an image"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestUploadService_UploadImage_RejectsEmpty(t *testing.T) {
	fx := createTestUploadService(t, 0)

	_, err := fx.service.UploadImage(context.Background(), usecase.UploadFile{
		Filename: "empty.png",
		Content:  bytes.NewReader(nil),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUploadService_UploadImage_TooLarge(t *testing.T) {
	fx := createTestUploadService(t, 16)
	data := pngBytes()

	// Declared size over the cap fails before any read.
	_, err := fx.service.UploadImage(context.Background(), usecase.UploadFile{
		Filename: "big.png",
		Size:     1 << 30,
		Content:  bytes.NewReader(data),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)

	// Undeclared size still trips the cap while reading.
	_, err = fx.service.UploadImage(context.Background(), usecase.UploadFile{
		Filename: "big.png",
		Content:  bytes.NewReader(data),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestUploadService_UploadImages(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()

	fx.store.On("Save", ctx, mock.Anything, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "images/product-x.png", URL: "/uploads/images/product-x.png", Size: 40}, nil).
		Twice()

	images, err := fx.service.UploadImages(ctx, []usecase.UploadFile{
		{Filename: "a.png", Content: bytes.NewReader(pngBytes())},
		{Filename: "b.png", Content: bytes.NewReader(pngBytes())},
	})
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestUploadService_UploadImages_Empty(t *testing.T) {
	fx := createTestUploadService(t, 0)

	_, err := fx.service.UploadImages(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUploadService_OpenImage(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()

	fx.store.On("Open", ctx, "images/product-1.png").
		Return(io.NopCloser(bytes.NewReader(pngBytes())), nil)

	stream, err := fx.service.OpenImage(ctx, "product-1.png")
	require.NoError(t, err)
	defer stream.Content.Close()
	assert.Equal(t, "image/png", stream.ContentType)
}

func TestUploadService_OpenImage_Missing(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()

	fx.store.On("Open", ctx, "images/ghost.png").
		Return(nil, fmt.Errorf("blob ghost.png: %w", io.ErrUnexpectedEOF))
	fx.store.On("Open", ctx, "images/gone.png").
		Return(nil, errors.Wrap(os.ErrNotExist, "key gone.png not found"))

	_, err := fx.service.OpenImage(ctx, "gone.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)

	_, err = fx.service.OpenImage(ctx, "ghost.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrFileNotFound)
}

func TestUploadService_OpenImage_UnsafeName(t *testing.T) {
	fx := createTestUploadService(t, 0)

	for _, name := range []string{"", ".", "..", "../secret.png", "a/b.png"} {
		_, err := fx.service.OpenImage(context.Background(), name)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrFileNotFound, name)
	}
}

func TestUploadService_StoreResource_Avatar(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	data := pngBytes()
	key := constants.ResourceAvatar + "/" + userID.String() + "/me.png"
	url := "/uploads/" + key

	fx.store.On("Save", ctx, key, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: key, URL: url, Size: int64(len(data))}, nil)
	fx.userRepo.On("UpdateAvatarURL", ctx, userID, url).Return(nil)

	image, err := fx.service.StoreResource(ctx, constants.ResourceAvatar, userID.String(), usecase.UploadFile{
		Filename: "me.png",
		Size:     int64(len(data)),
		Content:  bytes.NewReader(data),
	})
	require.NoError(t, err)
	assert.Equal(t, "me.png", image.Filename)
	assert.Equal(t, url, image.URL)
}

func TestUploadService_StoreResource_ProductImageSkipsWriteBack(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	productID := uuid.New()
	data := pngBytes()
	key := constants.ResourceProductImage + "/" + productID.String() + "/cover.png"

	fx.store.On("Save", ctx, key, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: key, URL: "/uploads/" + key, Size: int64(len(data))}, nil)

	_, err := fx.service.StoreResource(ctx, constants.ResourceProductImage, productID.String(), usecase.UploadFile{
		Filename: "cover.png",
		Content:  bytes.NewReader(data),
	})
	require.NoError(t, err)
}

func TestUploadService_StoreResource_Validation(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	file := usecase.UploadFile{Filename: "x.png", Content: bytes.NewReader(pngBytes())}

	_, err := fx.service.StoreResource(ctx, "wallpaper", uuid.NewString(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.StoreResource(ctx, constants.ResourceAvatar, "not-a-uuid", file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUploadService_DeleteResource(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	id := uuid.NewString()
	key := constants.ResourceStartupLogo + "/" + id + "/logo.png"

	fx.store.On("Delete", ctx, key).Return(nil)

	require.NoError(t, fx.service.DeleteResource(ctx, constants.ResourceStartupLogo, id, "logo.png"))
}

func TestUploadService_DeleteResource_Missing(t *testing.T) {
	fx := createTestUploadService(t, 0)
	ctx := context.Background()
	id := uuid.NewString()
	key := constants.ResourceAvatar + "/" + id + "/gone.png"

	fx.store.On("Delete", ctx, key).
		Return(errors.Wrap(os.ErrNotExist, "key gone.png not found"))

	err := fx.service.DeleteResource(ctx, constants.ResourceAvatar, id, "gone.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
}
