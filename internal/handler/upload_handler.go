package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"siteadmin/pkg/cloudinary"
	"siteadmin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadHandler struct {
	cloud  cloudinary.Client
	folder string
	log    *zap.Logger
}

// NewUploadHandler accepts a nil client; uploads then answer 503.
func NewUploadHandler(cloud cloudinary.Client, folder string, log *zap.Logger) *UploadHandler {
	return &UploadHandler{cloud: cloud, folder: folder, log: log}
}

type UploadResponse struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type uploadFunc func(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error)

func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		fail(c, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}
	h.upload(c, "img_", h.folder+"/images", h.cloud.UploadImage)
}

func (h *UploadHandler) UploadVideo(c *gin.Context) {
	if h.cloud == nil {
		fail(c, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}
	h.upload(c, "vid_", h.folder+"/videos", h.cloud.UploadVideo)
}

func (h *UploadHandler) upload(c *gin.Context, prefix, folder string, fn uploadFunc) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "file required")
		return
	}
	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "could not read file")
		return
	}
	defer f.Close()

	publicID := prefix + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, thumb, err := fn(c.Request.Context(), f, folder, publicID)
	if err != nil {
		logger.FromContext(c.Request.Context(), h.log).Error("upload failed",
			zap.String("public_id", publicID), zap.Error(err))
		fail(c, http.StatusBadGateway, "upload failed")
		return
	}
	respond(c, http.StatusCreated, "File uploaded successfully", UploadResponse{URL: url, ThumbnailURL: thumb})
}
