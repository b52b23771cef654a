package api

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// UploadHandler stores multipart files on local disk. Stored names are
// prefixed with a timestamp and a random number so concurrent uploads of the
// same original name never collide.
type UploadHandler struct {
	cfg config.UploadConfig
}

func NewUploadHandler(cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// @Summary Upload files
// @Description Accepts up to the configured number of files in the "files" field
// @Tags upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} resdto.UploadResponse
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}
	if len(files) > h.cfg.MaxFiles {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Too many files, limit is %d", h.cfg.MaxFiles),
		})
		return
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Replaced files the client no longer references, comma separated.
	if oldFiles := c.PostForm("oldFile"); oldFiles != "" {
		h.removeOldFiles(oldFiles)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		storedName := h.storedName(filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.Dir, storedName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
			return
		}
		urls = append(urls, "/"+h.cfg.Dir+"/"+storedName)
	}

	c.JSON(http.StatusOK, resdto.UploadResponse{URLs: urls})
}

func (h *UploadHandler) storedName(original string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), suffix, original)
}

// removeOldFiles deletes previously stored files by name only; path elements
// are stripped so the client cannot reach outside the upload directory.
func (h *UploadHandler) removeOldFiles(oldFiles string) {
	for _, name := range strings.Split(oldFiles, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		name = filepath.Base(strings.TrimPrefix(name, "/"+h.cfg.Dir+"/"))
		_ = os.Remove(filepath.Join(h.cfg.Dir, name))
	}
}
