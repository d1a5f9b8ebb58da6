package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"spacehub/internal/handler/dto/response"
	"spacehub/internal/handler/httperr"
	"spacehub/internal/infra/storage"
	"spacehub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 5 << 20

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// @Summary Upload a review image
// @Tags reviews
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "image file"
// @Success 201 {object} response.UploadResponse
// @Router /api/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		badRequest(c, errs.Wrap(err, "missing image file"), "Image file is required")
		return
	}
	if fh.Size > maxUploadBytes {
		badRequest(c, errs.New("upload too large"), "Image exceeds the size limit")
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		badRequest(c, errs.New("unsupported image extension"), "Unsupported image type")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternalError, errs.Wrap(err, "failed to open upload"), "Internal server error")
		return
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternalError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
