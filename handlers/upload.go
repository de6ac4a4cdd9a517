package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// MaxUploadSize is the per-file upload limit (5 MiB)
	MaxUploadSize = 5 * 1024 * 1024
	// MaxGalleryBatch is the maximum number of files per multi-upload
	MaxGalleryBatch = 3
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var uploadDir = "./uploads"

// SetUploadDir configures where uploaded images are stored
func SetUploadDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}
	uploadDir = dir
	return nil
}

// UploadImage accepts a single image file (multipart field "image") and
// returns its serving path as {"imageUrl": ...}
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
		return
	}

	if err := validateImageFile(file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	url, err := saveImage(c, file)
	if err != nil {
		log.Printf("Error saving upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// UploadImages accepts up to MaxGalleryBatch image files (multipart field
// "images") and returns their serving paths as {"imageUrls": [...]}
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image files provided"})
		return
	}
	if len(files) > MaxGalleryBatch {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("You can only upload up to %d images at once", MaxGalleryBatch),
		})
		return
	}

	// Validate the whole batch before storing anything
	for _, file := range files {
		if err := validateImageFile(file); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := saveImage(c, file)
		if err != nil {
			log.Printf("Error saving upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store images"})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"imageUrls": urls})
}

func validateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file %s exceeds the 5MB size limit", file.Filename)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("only JPG, PNG and GIF files are allowed")
	}
	return nil
}

func saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	dst := filepath.Join(uploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	log.Printf("Stored upload %s (%d bytes)", name, file.Size)
	return "/uploads/" + name, nil
}
