package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
)

// Upload limits, matching the front end.
const (
	maxUploadFiles    = 5
	maxUploadFileSize = 6 << 20 // 6MB per image
)

// ImageUploader defines the interface that the object storage must implement.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (*models.ImageRef, error)
}

// UploadsResponse lists the stored image references
// swagger:model UploadsResponse
type UploadsResponse struct {
	Images []models.ImageRef `json:"images"`
}

// NewUploadsHandler returns an HTTP handler for multipart image uploads.
// @Summary Upload item images
// @Description Stores up to 5 images of at most 6MB each, multipart field "images".
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} handlers.UploadsResponse "Stored image references"
// @Failure 400 {object} handlers.RegisterErrorResponse "No files / too many / too large"
// @Router /api/uploads [post]
func NewUploadsHandler(store ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadFiles * maxUploadFileSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid multipart body"})
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "No files uploaded"})
			return
		}
		if len(files) > maxUploadFiles {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Too many files"})
			return
		}

		images := make([]models.ImageRef, 0, len(files))
		for _, header := range files {
			if header.Size > maxUploadFileSize {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "File too large"})
				return
			}

			f, err := header.Open()
			if err != nil {
				logger.Log.Errorw("failed to open uploaded file", "filename", header.Filename, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Upload failed"})
				return
			}

			ref, err := store.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), f)
			f.Close()
			if err != nil {
				logger.Log.Errorw("failed to store uploaded file", "filename", header.Filename, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Upload failed"})
				return
			}

			images = append(images, *ref)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadsResponse{Images: images})
	}
}
