package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"venturesroom/internal/domain/constants"
	mockUsecase "venturesroom/internal/mocks/usecase"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// multipartBody builds a multipart payload with one file part per name.
func multipartBody(t *testing.T, fieldName string, filenames []string, extraFields map[string]string) (string, *bytes.Buffer) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, filename := range filenames {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfakedata"))
		require.NoError(t, err)
	}
	for key, value := range extraFields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return writer.FormDataContentType(), body
}

func TestUploadHandler_UploadImage(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	uploadUC.On("UploadImage", mock.Anything, mock.MatchedBy(func(file usecase.UploadFile) bool {
		return file.Filename == "photo.png" && file.Size > 0
	})).Return(&usecase.UploadedImage{
		Filename: "product-1-abcd.png",
		URL:      "/uploads/images/product-1-abcd.png",
		Size:     16,
	}, nil)

	contentType, body := multipartBody(t, "image", []string{"photo.png"}, nil)
	c, rec := newMultipartContext(http.MethodPost, "/api/upload/upload-image", contentType, body)

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/images/product-1-abcd.png")
}

func TestUploadHandler_UploadImage_MissingFile(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	contentType, body := multipartBody(t, "other", []string{"photo.png"}, nil)
	c, rec := newMultipartContext(http.MethodPost, "/api/upload/upload-image", contentType, body)

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_UploadImages(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	uploadUC.On("UploadImages", mock.Anything, mock.MatchedBy(func(files []usecase.UploadFile) bool {
		return len(files) == 2
	})).Return([]*usecase.UploadedImage{
		{Filename: "a.png"}, {Filename: "b.png"},
	}, nil)

	contentType, body := multipartBody(t, "images", []string{"a.png", "b.png"}, nil)
	c, rec := newMultipartContext(http.MethodPost, "/api/upload/upload-images", contentType, body)

	require.NoError(t, h.UploadImages(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadHandler_UploadImages_TooMany(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	filenames := make([]string, maxBatchFiles+1)
	for i := range filenames {
		filenames[i] = "file.png"
	}
	contentType, body := multipartBody(t, "images", filenames, nil)
	c, _ := newMultipartContext(http.MethodPost, "/api/upload/upload-images", contentType, body)

	err := h.UploadImages(c)
	require.Error(t, err)
}

func TestUploadHandler_TestImage(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	uploadUC.On("OpenImage", mock.Anything, "product-1.png").
		Return(&usecase.ImageStream{
			Content:     io.NopCloser(bytes.NewReader([]byte("png-bytes"))),
			ContentType: "image/png",
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/upload/test-image/product-1.png", "")
	c.SetParamNames("filename")
	c.SetParamValues("product-1.png")

	require.NoError(t, h.TestImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestUploadHandler_StoreResource(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	resourceID := uuid.NewString()
	uploadUC.On("StoreResource", mock.Anything, constants.ResourceAvatar, resourceID, mock.MatchedBy(func(file usecase.UploadFile) bool {
		return file.Filename == "me.png"
	})).Return(&usecase.UploadedImage{Filename: "me.png", URL: "/uploads/avatar/" + resourceID + "/me.png"}, nil)

	contentType, body := multipartBody(t, "file", []string{"me.png"}, map[string]string{"resourceId": resourceID})
	c, rec := newMultipartContext(http.MethodPost, "/api/storage/avatar", contentType, body)
	c.SetParamNames("type")
	c.SetParamValues(constants.ResourceAvatar)

	require.NoError(t, h.StoreResource(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadHandler_DeleteResource(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})

	resourceID := uuid.NewString()
	uploadUC.On("DeleteResource", mock.Anything, constants.ResourceStartupLogo, resourceID, "logo.png").
		Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/storage/startup-logo/"+resourceID+"/logo.png", "")
	c.SetParamNames("type", "id", "fileName")
	c.SetParamValues(constants.ResourceStartupLogo, resourceID, "logo.png")

	require.NoError(t, h.DeleteResource(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
