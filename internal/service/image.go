package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wanderlist/wanderlist/internal/storage"
)

// ImageService stores item photos. Images are keyed by a random name
// so uploads never collide; the resulting URL is saved on the item.
type ImageService struct {
	storage storage.Storage
}

func NewImageService(storage storage.Storage) *ImageService {
	return &ImageService{storage: storage}
}

// Upload saves an image and returns its public URL. Validation of
// type and size is the caller's job.
func (s *ImageService) Upload(userID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	storagePath := filepath.Join("public", "items", userID, filename)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return s.storage.URL(storagePath), nil
}

// Remove deletes a previously uploaded image by its URL. URLs outside
// our storage (placeholders, external links) are ignored.
func (s *ImageService) Remove(imageURL string) {
	path := s.storagePath(imageURL)
	if path == "" {
		return
	}

	err := s.storage.Delete(path)
	if err != nil {
		slog.Warn("failed to delete image from storage", "error", err, "path", path)
	}
}

func (s *ImageService) storagePath(imageURL string) string {
	marker := "/public/items/"
	i := strings.Index(imageURL, marker)
	if i < 0 {
		return ""
	}
	return strings.TrimPrefix(imageURL[i:], "/")
}
