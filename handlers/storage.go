package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	storageSvc "weddinghub/services/storage"
	"weddinghub/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler exposes vendor gallery uploads.
type StorageHandler struct {
	Svc storageSvc.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storageSvc.StorageService) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

// allowedBuckets are the permitted upload folders.
var allowedBuckets = map[string]bool{
	"gallery": true,
	"videos":  true,
}

// Upload handles POST /storage/:bucket. The file lands in a temp path, gets
// pushed to the media store, and the temp copy is removed.
func (h *StorageHandler) Upload(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid bucket", "allowed values are 'gallery' and 'videos'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store upload", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, url, err := h.Svc.UploadFile(c.Request.Context(), tempFilePath, bucket)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "publicId": publicID, "url": url})
}

// Delete handles DELETE /storage/:publicId.
func (h *StorageHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteFile(c.Request.Context(), c.Param("publicId")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted"})
}
