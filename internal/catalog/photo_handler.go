package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"boardcafe-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// POST /api/games/photo
// multipart로 게임 사진을 받아 저장하고, 정적 경로 URL을 돌려준다.
// 파일명 충돌을 피하려고 uuid로 이름을 새로 짓는다.
func UploadGamePhotoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("photo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "photo 파일이 필요합니다")
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedPhotoExts[ext] {
			return fiber.NewError(fiber.StatusBadRequest, "jpg/png/webp 형식만 업로드할 수 있습니다")
		}

		if file.Size > 5*1024*1024 {
			return fiber.NewError(fiber.StatusBadRequest, "사진은 5MB 이하여야 합니다")
		}

		if err := os.MkdirAll(cfg.GameImagePath, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "사진을 저장할 수 없습니다")
		}

		name := uuid.NewString() + ext
		dest := filepath.Join(cfg.GameImagePath, name)
		if err := c.SaveFile(file, dest); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "사진을 저장할 수 없습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"photo": fmt.Sprintf("/images/games/%s", name),
		})
	}
}
