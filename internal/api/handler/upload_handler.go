package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/infrastructure/storage"
)

// UploadHandler issues presigned URLs so clients upload resumes and avatars
// directly to object storage.
type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type presignRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=resume avatar"`
	Filename string `json:"filename" validate:"required"`
}

type presignResponse struct {
	Success   bool   `json:"success"`
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

type downloadResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in_seconds"`
}

// Presign handles POST /api/v1/upload/presign.
func (h *UploadHandler) Presign(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req presignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload, err := h.uploader.PresignPut(c.Request().Context(), req.Kind, req.Filename)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, presignResponse{
		Success:   true,
		Key:       upload.Key,
		UploadURL: upload.UploadURL,
		ExpiresIn: int(upload.ExpiresIn.Seconds()),
	})
}

// Download handles GET /api/v1/upload/download?key= and returns a short-lived
// GET URL for an uploaded object, so recruiters can fetch applicant resumes
// without the API proxying file bytes.
func (h *UploadHandler) Download(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	url, err := h.uploader.PresignGet(c.Request().Context(), key)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, downloadResponse{
		Success:     true,
		DownloadURL: url,
		ExpiresIn:   int(h.uploader.PresignTTL().Seconds()),
	})
}
