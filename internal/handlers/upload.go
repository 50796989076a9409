package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/hotspot/internal/config"
)

// maxUploadSize caps banner images at 5 MB.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores banner images on local disk.
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// UploadBanner accepts a multipart image and returns its public URL.
func (h *UploadHandler) UploadBanner(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	if fileHeader.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusBadRequest, "image exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported image format")
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return err
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(h.cfg.UploadDir, name)
	if err := c.SaveFile(fileHeader, dst); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(h.cfg.UploadBaseURL, "/"), name)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"url": url},
	})
}
