package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"venturesroom/internal/delivery/http/response"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxBatchFiles caps the number of files accepted per batch upload.
const maxBatchFiles = 10

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler holds dependencies for upload and storage handlers.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadImage stores one ad-hoc image from the multipart "image" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := openUploadFile(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.close()

	image, err := h.uploadUC.UploadImage(c.Request().Context(), file.upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Image uploaded")
}

// UploadImages stores a batch of images from the multipart "images" field.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid multipart form")
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No image files provided")
	}
	if len(fileHeaders) > maxBatchFiles {
		return domainerrors.ErrValidationFailed.WrapMessage("too many files in one batch")
	}

	files := make([]usecase.UploadFile, 0, len(fileHeaders))
	opened := make([]*uploadFile, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			f.close()
		}
	}()
	for _, fileHeader := range fileHeaders {
		file, err := openUploadFile(fileHeader)
		if err != nil {
			return errors.WithStack(err)
		}
		opened = append(opened, file)
		files = append(files, file.upload)
	}

	images, err := h.uploadUC.UploadImages(c.Request().Context(), files)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, images, "Images uploaded")
}

// TestImage streams a previously uploaded ad-hoc image.
func (h *UploadHandler) TestImage(c echo.Context) error {
	stream, err := h.uploadUC.OpenImage(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer stream.Content.Close()

	return c.Stream(http.StatusOK, stream.ContentType, stream.Content)
}

// StoreResource saves a resource file (avatar, logo, product image) from the
// multipart "file" field under the given type and resource id.
func (h *UploadHandler) StoreResource(c echo.Context) error {
	resourceType := c.Param("type")
	resourceID := c.FormValue("resourceId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing resource file")
	}

	file, err := openUploadFile(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.close()

	image, err := h.uploadUC.StoreResource(c.Request().Context(), resourceType, resourceID, file.upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Resource stored")
}

// DeleteResource removes one stored resource file.
func (h *UploadHandler) DeleteResource(c echo.Context) error {
	err := h.uploadUC.DeleteResource(
		c.Request().Context(),
		c.Param("type"),
		c.Param("id"),
		c.Param("fileName"),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Resource deleted")
}

// uploadFile pairs the usecase DTO with the underlying multipart handle.
type uploadFile struct {
	upload usecase.UploadFile
	src    multipart.File
}

func (f *uploadFile) close() {
	f.src.Close()
}

func openUploadFile(fileHeader *multipart.FileHeader) (*uploadFile, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}

	return &uploadFile{
		upload: usecase.UploadFile{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Content:  src,
		},
		src: src,
	}, nil
}
