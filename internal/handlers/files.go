package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobmarket-service/internal/models"
	"jobmarket-service/internal/repositories"
	"jobmarket-service/internal/storage"
)

// FileHandler stores uploaded blobs and their metadata rows.
type FileHandler struct {
	fileRepo repositories.FileRepository
	blobs    storage.BlobStore
}

func NewFileHandler(fileRepo repositories.FileRepository, blobs storage.BlobStore) *FileHandler {
	return &FileHandler{fileRepo: fileRepo, blobs: blobs}
}

// Upload accepts a multipart file, stores its bytes under a random key
// and records a file_items row owned by the caller.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	fileType := c.PostForm("type")
	if fileType == "" {
		fileType = "attachment"
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := h.blobs.Save(c.Request.Context(), key, src, header.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}

	item, err := h.fileRepo.Create(c.Request.Context(), models.FileItem{
		Title:   header.Filename,
		Type:    fileType,
		Path:    key,
		OwnerID: c.GetInt("userID"),
	})
	if err != nil {
		// keep storage consistent with metadata
		_ = h.blobs.Delete(c.Request.Context(), key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record file"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Get returns the metadata of one file.
func (h *FileHandler) Get(c *gin.Context) {
	fileID, ok := pathID(c, "file_id")
	if !ok {
		return
	}
	item, err := h.fileRepo.FindByID(c.Request.Context(), fileID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "file not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Download streams a file's bytes to the caller.
func (h *FileHandler) Download(c *gin.Context) {
	fileID, ok := pathID(c, "file_id")
	if !ok {
		return
	}
	item, err := h.fileRepo.FindByID(c.Request.Context(), fileID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "file not found"})
		return
	}

	rc, err := h.blobs.Open(c.Request.Context(), item.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open file"})
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+item.Title+`"`)
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", rc, nil)
}

// ListMine returns the caller's uploaded files.
func (h *FileHandler) ListMine(c *gin.Context) {
	items, err := h.fileRepo.ListByOwner(c.Request.Context(), c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load files"})
		return
	}
	if items == nil {
		items = []models.FileItem{}
	}
	c.JSON(http.StatusOK, gin.H{"files": items})
}

// Delete removes a file's metadata and bytes. Owner only.
func (h *FileHandler) Delete(c *gin.Context) {
	fileID, ok := pathID(c, "file_id")
	if !ok {
		return
	}
	item, err := h.fileRepo.FindByID(c.Request.Context(), fileID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrFileNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "file not found"})
		return
	}
	if item.OwnerID != c.GetInt("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the file owner"})
		return
	}

	if err := h.fileRepo.Delete(c.Request.Context(), fileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete file"})
		return
	}
	_ = h.blobs.Delete(c.Request.Context(), item.Path)
	c.Status(http.StatusNoContent)
}
