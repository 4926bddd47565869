package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads and removes vendor gallery media.
type StorageService interface {
	// UploadFile pushes a local file into the given folder and returns the
	// permanent public ID and its delivery URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID, url string, err error)
	// DeleteFile removes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a StorageService.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

// UploadFile uploads into destFolder and returns the asset identifiers.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeleteFile destroys the asset.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
