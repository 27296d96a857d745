package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/images"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	maxImageSize      = 10 << 20 // 10 MiB before compression
	imageMaxDimension = 1600
	imageQuality      = 80
)

type UploadHandler struct {
	store storage.ObjectStorage
}

// NewUploadHandler registers the shared image upload route. Images are
// downscaled and re-encoded before they reach object storage.
func NewUploadHandler(protected *gin.RouterGroup, store storage.ObjectStorage) {
	handler := &UploadHandler{store: store}
	protected.POST("/uploads/image", handler.UploadImage)
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Accepts PNG or JPEG, compresses it, and returns the public URL
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /uploads/image [post]
// @Security     BearerAuth
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Image file is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.Error(apperror.BadRequest("Image exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read image file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	compressed, err := images.Compress(data, imageMaxDimension, imageQuality)
	if err != nil {
		c.Error(apperror.BadRequest("Unsupported image format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	key := fmt.Sprintf("images/%s/%d.jpg", userID, time.Now().UnixNano())
	url, err := h.store.Upload(c.Request.Context(), key, "image/jpeg", compressed)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Image uploaded", gin.H{"url": url})
}
